package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/assistant/internal/config"
	"gitlab.com/dirk.krummacker/assistant/internal/storage/sqlstore"
)

// Usage example on the command line:
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go
// > ASSISTANT_STORAGE_DRIVER=postgres ASSISTANT_STORAGE_DSN=postgres://dirk@localhost/test go run main.go
// > go run main.go -config=assistant.yaml -print
func main() {
	configFile := flag.String("config", "", "the configuration file (yaml, json or toml)")
	printOnly := flag.Bool("print", false, "print the statements instead of executing them")
	flag.Parse()

	if *printOnly {
		for _, statement := range sqlstore.Statements(sqlstore.Schema) {
			fmt.Println(statement + ";")
		}
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println("could not load configuration", err)
		os.Exit(1)
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

	if err := store.Migrate(context.Background()); err != nil {
		panic(err)
	}
	fmt.Println("schema is up to date")
}
