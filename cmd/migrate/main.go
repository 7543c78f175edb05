// Command migrate copies all rows from a legacy massage shop database file
// into a freshly migrated one, preserving the original numeric ids. It is a
// one-time data-transfer tool, not part of runtime behavior.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jihokang/massage-shop-web/model"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	oldPath string
	newPath string
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy rows from a legacy massage shop database into a new one",
	Long: `Copy customers, therapists, reservations, management records and users
verbatim from a legacy SQLite database file into a new one, preserving the
original numeric ids. The new database schema is created if it does not exist.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.Flags().StringVar(&oldPath, "old", "massage_shop.db", "Path to the legacy SQLite database file")
	rootCmd.Flags().StringVar(&newPath, "new", "massage_shop_new.db", "Path to the destination SQLite database file")
}

func openDatabase(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", path)), &gorm.Config{})
}

// copyTable reads every row of dst's table from the source database and
// writes it into the destination, keeping primary keys intact.
func copyTable[T any](src, dst *gorm.DB, label string) (int, error) {
	var rows []T
	if err := src.Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", label, err)
	}
	for i := range rows {
		if err := dst.Create(&rows[i]).Error; err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", label, err)
		}
	}
	return len(rows), nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	src, err := openDatabase(oldPath)
	if err != nil {
		return fmt.Errorf("failed to open legacy database %s: %w", oldPath, err)
	}
	dst, err := openDatabase(newPath)
	if err != nil {
		return fmt.Errorf("failed to open destination database %s: %w", newPath, err)
	}

	if err := dst.AutoMigrate(
		&model.Customer{},
		&model.Therapist{},
		&model.Reservation{},
		&model.ManagementRecord{},
		&model.User{},
	); err != nil {
		return fmt.Errorf("failed to create destination schema: %w", err)
	}

	// Customers first so reservation and record foreign keys resolve.
	steps := []struct {
		label string
		run   func() (int, error)
	}{
		{"customers", func() (int, error) { return copyTable[model.Customer](src, dst, "customers") }},
		{"therapists", func() (int, error) { return copyTable[model.Therapist](src, dst, "therapists") }},
		{"reservations", func() (int, error) { return copyTable[model.Reservation](src, dst, "reservations") }},
		{"management records", func() (int, error) { return copyTable[model.ManagementRecord](src, dst, "management records") }},
		{"users", func() (int, error) { return copyTable[model.User](src, dst, "users") }},
	}
	for _, step := range steps {
		n, err := step.run()
		if err != nil {
			return err
		}
		log.Printf("migrated %d %s", n, step.label)
	}

	log.Println("database migration completed")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
