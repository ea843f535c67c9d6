// verify_bill_totals compares every bill's total_amount with the sum of its
// items' final_price and prints the bills that disagree.
//
//	go run ./scripts            # report only
//	go run ./scripts -fix       # rewrite mismatched totals
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/config"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

type billTotal struct {
	ID          primitive.ObjectID `bson:"_id"`
	TotalAmount float64            `bson:"total_amount"`
	ItemsTotal  float64            `bson:"items_total"`
	ItemCount   int                `bson:"item_count"`
}

// drift is items_total - total_amount rounded to cents.
func (b billTotal) drift() decimal.Decimal {
	return decimal.NewFromFloat(b.ItemsTotal).Sub(decimal.NewFromFloat(b.TotalAmount)).Round(2)
}

func totalsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.BillItems,
			"localField":   "_id",
			"foreignField": "bill_id",
			"as":           "items",
		}}},
		{{Key: "$project", Value: bson.M{
			"total_amount": 1,
			"items_total":  bson.M{"$sum": "$items.final_price"},
			"item_count":   bson.M{"$size": "$items"},
		}}},
	}
}

func loadEnv() {
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}
	cwd, _ := os.Getwd()
	for _, dir := range []string{cwd, filepath.Dir(cwd)} {
		p := filepath.Join(dir, "config", "env", envName+".env")
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func main() {
	fix := flag.Bool("fix", false, "rewrite total_amount of mismatched bills")
	flag.Parse()

	loadEnv()
	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("cannot read configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	bills := client.Database(cfg.DBName()).Collection(global.MongoDB_ColNames.Bills)
	cursor, err := bills.Aggregate(ctx, totalsPipeline())
	if err != nil {
		log.Fatalf("aggregate: %v", err)
	}
	defer cursor.Close(ctx)

	checked, mismatched, fixed := 0, 0, 0
	for cursor.Next(ctx) {
		var b billTotal
		if err := cursor.Decode(&b); err != nil {
			log.Printf("decode bill: %v", err)
			continue
		}
		checked++
		if b.drift().IsZero() {
			continue
		}
		mismatched++
		fmt.Printf("%s total_amount=%.2f items=%d items_total=%.2f drift=%s\n",
			b.ID.Hex(), b.TotalAmount, b.ItemCount, b.ItemsTotal, b.drift())

		if *fix {
			want, _ := decimal.NewFromFloat(b.ItemsTotal).Round(2).Float64()
			_, err := bills.UpdateByID(ctx, b.ID, bson.M{"$set": bson.M{"total_amount": want, "updated_at": time.Now().UTC()}})
			if err != nil {
				log.Printf("fix %s: %v", b.ID.Hex(), err)
				continue
			}
			fixed++
		}
	}
	if err := cursor.Err(); err != nil {
		log.Fatalf("cursor: %v", err)
	}

	fmt.Printf("checked %d bills, %d mismatched", checked, mismatched)
	if *fix {
		fmt.Printf(", %d fixed", fixed)
	}
	fmt.Println()
}
