package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ikkim/foodreview-backend/config"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/db"
	"github.com/ikkim/foodreview-backend/pkg/logger"
)

func main() {
	assumeYes := flag.Bool("y", false, "import without asking for confirmation")
	flag.Parse()

	// 명령줄 인자 확인
	if flag.NArg() < 1 {
		log.Fatal("Usage: go run cmd/seed/main.go [-y] <xlsx_file_path>")
	}
	filePath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.Initialize(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	result, err := readRestaurantsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	for _, rowErr := range result.Skipped {
		fmt.Printf("Skipping row %d: %v\n", rowErr.Row, rowErr.Err)
	}
	fmt.Printf("Valid restaurants: %d, skipped rows: %d\n", len(result.Restaurants), len(result.Skipped))
	if len(result.Restaurants) == 0 {
		fmt.Println("Nothing to import.")
		return
	}

	if !*assumeYes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(db.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	tm := repository.NewTransactionManager(db.GetDB())
	if err := importRestaurants(context.Background(), tm, result.Restaurants); err != nil {
		fmt.Fprintln(os.Stderr, "Import failed, nothing was saved:", err)
		os.Exit(1)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total restaurants imported: %d\n", len(result.Restaurants))
}
