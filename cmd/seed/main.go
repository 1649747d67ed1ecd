// Command main runs the database seeder for Me-API.
package main

import (
	"flag"
	"log"

	"meapi/internal/bootstrap"
	"meapi/internal/config"
	"meapi/internal/seed"
)

func main() {
	// Parse command line flags
	numProjects := flag.Int("projects", 20, "Number of demo projects to create")
	numWork := flag.Int("work", 3, "Number of demo work experience entries to create")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d projects, %d work entries\n", *numProjects, *numWork)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect and run the built-in idempotent seed first: the fixed
	// profile plus the admin account
	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedBuiltIns: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	factory := seed.NewFactory(db)
	for i := 0; i < *numProjects; i++ {
		if _, err := factory.CreateProject(); err != nil {
			log.Fatalf("Project seeding failed: %v", err)
		}
	}
	for i := 0; i < *numWork; i++ {
		if _, err := factory.CreateWorkExperience(); err != nil {
			log.Fatalf("Work experience seeding failed: %v", err)
		}
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Printf("Admin login: %s / %s\n", seed.AdminUsername, seed.DefaultAdminPassword)
}
