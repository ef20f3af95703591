package main

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/dirk.krummacker/assistant/internal/config"
	"gitlab.com/dirk.krummacker/assistant/internal/storage/sqlstore"
)

// Usage example on the command line:
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	driver := cfg.Storage.Driver
	if driver == config.DriverFile {
		driver = config.DriverMySQL
	}
	store, err := sqlstore.Open(driver, cfg.Storage.DSN)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	totalWaitTime := 0
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := store.Ping(ctx)
		cancel()
		if err == nil {
			fmt.Println("database is available")
			break
		}
		fmt.Println(err)
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
