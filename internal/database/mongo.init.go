package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// EnsureCollections creates the named collections that do not exist yet.
// Transactions cannot create collections implicitly, so this runs at startup.
func EnsureCollections(ctx context.Context, db *mongo.Database, names []string) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range names {
		if name == "" || have[name] {
			continue
		}
		logger.WithCollection(name).Info("collection missing, creating")
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}
	return nil
}

// IndexSpec is one index derived from `index` struct tags.
type IndexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
	Sparse bool
	TTL    *int32
}

// parseIndexTag splits `unique;single:-1;compound:name` into option maps.
func parseIndexTag(tag string) []map[string]string {
	var result []map[string]string
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, sub := range strings.Split(part, ",") {
			sub = strings.TrimSpace(sub)
			if sub == "" {
				continue
			}
			if k, v, ok := strings.Cut(sub, ":"); ok {
				entry[k] = v
			} else {
				entry[sub] = ""
			}
		}
		if len(entry) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

func parseOrder(entry map[string]string, key string) int {
	if entry[key] == "-1" || entry["order"] == "-1" {
		return -1
	}
	return 1
}

// IndexSpecs reads the `index` tags of model:
//
//	unique           <field>_unique
//	single[:-1]      <field>_single
//	text             <field>_text
//	ttl:<seconds>    <field>_ttl
//	compound:<name>  fields sharing <name> form one index; "_unique" in the name makes it unique
//	sparse           modifier for unique/compound
func IndexSpecs(model interface{}) ([]IndexSpec, error) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var specs []IndexSpec
	compounds := map[string]*IndexSpec{}
	var compoundOrder []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := strings.SplitN(field.Tag.Get("bson"), ",", 2)[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, entry := range parseIndexTag(tag) {
			_, sparse := entry["sparse"]

			if _, ok := entry["text"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_text", Keys: bson.D{{Key: bsonField, Value: "text"}}})
			}
			if _, ok := entry["single"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_single", Keys: bson.D{{Key: bsonField, Value: parseOrder(entry, "single")}}})
			}
			if _, ok := entry["unique"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_unique", Keys: bson.D{{Key: bsonField, Value: 1}}, Unique: true, Sparse: sparse})
			}
			if v, ok := entry["ttl"]; ok {
				ttl, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("invalid ttl on %s: %w", bsonField, err)
				}
				secs := int32(ttl)
				specs = append(specs, IndexSpec{Name: bsonField + "_ttl", Keys: bson.D{{Key: bsonField, Value: 1}}, TTL: &secs})
			}
			if group, ok := entry["compound"]; ok && group != "" {
				spec, seen := compounds[group]
				if !seen {
					spec = &IndexSpec{Name: group, Unique: strings.Contains(group, "_unique")}
					compounds[group] = spec
					compoundOrder = append(compoundOrder, group)
				}
				spec.Keys = append(spec.Keys, bson.E{Key: bsonField, Value: parseOrder(entry, "compound_order")})
				spec.Sparse = spec.Sparse || sparse
			}
		}
	}

	sort.Strings(compoundOrder)
	for _, group := range compoundOrder {
		specs = append(specs, *compounds[group])
	}
	return specs, nil
}

func (s IndexSpec) options() *options.IndexOptions {
	opts := options.Index().SetName(s.Name)
	if s.Unique {
		opts.SetUnique(true)
	}
	if s.Sparse {
		opts.SetSparse(true)
	}
	if s.TTL != nil {
		opts.SetExpireAfterSeconds(*s.TTL)
	}
	return opts
}

// matches reports whether an index listed by the server has the same keys
// and uniqueness as s.
func (s IndexSpec) matches(existing bson.M) bool {
	keys, ok := existing["key"].(bson.M)
	if !ok || len(keys) != len(s.Keys) {
		return false
	}
	for _, k := range s.Keys {
		current, ok := keys[k.Key]
		if !ok {
			return false
		}
		want, isInt := k.Value.(int)
		if !isInt {
			if current != k.Value {
				return false
			}
			continue
		}
		switch v := current.(type) {
		case int32:
			if int(v) != want {
				return false
			}
		case int64:
			if int(v) != want {
				return false
			}
		case float64:
			if int(v) != want {
				return false
			}
		default:
			return false
		}
	}
	unique, _ := existing["unique"].(bool)
	return unique == s.Unique
}

// CreateIndexes makes the indexes of collection match model's tags,
// replacing same-named indexes whose definition changed.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	specs, err := IndexSpecs(model)
	if err != nil {
		return err
	}
	log := logger.WithCollection(collection.Name())

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("list indexes of %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	existing := map[string]bson.M{}
	for cursor.Next(ctx) {
		var info bson.M
		if err := cursor.Decode(&info); err != nil {
			return fmt.Errorf("decode index info: %w", err)
		}
		if name, ok := info["name"].(string); ok {
			existing[name] = info
		}
	}

	for _, spec := range specs {
		if current, ok := existing[spec.Name]; ok {
			if spec.matches(current) {
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.Name); err != nil {
				return fmt.Errorf("drop index %s: %w", spec.Name, err)
			}
			log.WithField("index", spec.Name).Info("dropped outdated index")
		}

		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: spec.options()}); err != nil {
			return fmt.Errorf("create index %s: %w", spec.Name, err)
		}
		log.WithField("index", spec.Name).Info("created index")
	}
	return nil
}
