package cmd

import (
	"log"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/note"
	"github.com/frahmantamala/budget-tracker/internal/purchase"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"notes", "purchases", "categories"} {
				if err := db.Exec(`DELETE FROM "` + table + `"`).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			log.Println("cleared existing data")
		}

		categories := []*category.Category{
			{CategoryName: "Groceries", CategoryAmount: decimal.NewFromInt(400)},
			{CategoryName: "Dining Out", CategoryAmount: decimal.NewFromInt(150)},
			{CategoryName: "Transport", CategoryAmount: decimal.NewFromInt(120)},
		}
		for _, cat := range categories {
			if err := db.Create(cat).Error; err != nil {
				log.Fatalf("failed to seed category %s: %v", cat.CategoryName, err)
			}
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		purchases := []*purchase.Purchase{
			{CategoryID: categories[0].CategoryID, Description: "weekly shop", Amount: decimal.NewFromFloat(82.40), Date: today.AddDate(0, 0, -3)},
			{CategoryID: categories[1].CategoryID, Description: "coffee", Amount: decimal.NewFromFloat(4.50), Date: today.AddDate(0, 0, -1)},
			{CategoryID: categories[1].CategoryID, Description: "pizza night", Amount: decimal.NewFromFloat(28.00), Date: today.AddDate(0, 0, -1)},
			{CategoryID: categories[2].CategoryID, Description: "bus pass", Amount: decimal.NewFromInt(60), Date: today},
		}
		for _, p := range purchases {
			if err := db.Create(p).Error; err != nil {
				log.Fatalf("failed to seed purchase %s: %v", p.Description, err)
			}
		}

		notes := []*note.Note{
			{CategoryID: categories[0].CategoryID, Category: "Groceries", Note: "switch to the cheaper market next month"},
			{CategoryID: categories[2].CategoryID, Category: "Transport", Note: "pass renews on the 1st"},
		}
		for _, n := range notes {
			if err := db.Create(n).Error; err != nil {
				log.Fatalf("failed to seed note: %v", err)
			}
		}

		log.Printf("seeded %d categories, %d purchases, %d notes", len(categories), len(purchases), len(notes))
	},
}
