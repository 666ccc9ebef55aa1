package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"yamsoo/internal/config"
	"yamsoo/internal/database"
	"yamsoo/internal/relation"
	"yamsoo/internal/repository"
	"yamsoo/internal/service"
)

func main() {
	// Define subcommands
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)

	// List flags
	listUser := listCmd.Int64("user", 0, "User ID to list pending suggestions for (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	suggestionService := buildSuggestionService(db)

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		handleGenerate(suggestionService)

	case "list":
		listCmd.Parse(os.Args[2:])
		if *listUser == 0 {
			fmt.Println("Error: -user flag is required")
			listCmd.PrintDefaults()
			os.Exit(1)
		}
		handleList(suggestionService, *listUser)

	default:
		printUsage()
		os.Exit(1)
	}
}

func buildSuggestionService(db *database.DB) *service.SuggestionService {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)

	catalog := relation.DefaultCatalog()
	inferenceService := service.NewInferenceService(profileRepo)
	relationshipService := service.NewRelationshipService(db, userRepo, profileRepo, relationshipRepo,
		requestRepo, catalog, inferenceService, nil)
	return service.NewSuggestionService(suggestionRepo, relationshipRepo, profileRepo, relationshipService)
}

func handleGenerate(suggestionService *service.SuggestionService) {
	log.Println("Scanning parent edges for sibling suggestions...")
	created, err := suggestionService.GenerateSiblingSuggestions()
	if err != nil {
		log.Fatalf("Suggestion generation failed: %v", err)
	}
	log.Printf("Done: %d new suggestions created", created)
}

func handleList(suggestionService *service.SuggestionService, userID int64) {
	suggestions, err := suggestionService.ListSuggestions(userID)
	if err != nil {
		log.Fatalf("Failed to list suggestions: %v", err)
	}

	if len(suggestions) == 0 {
		fmt.Printf("No pending suggestions for user %d\n", userID)
		return
	}

	fmt.Printf("Pending suggestions for user %d:\n", userID)
	for _, s := range suggestions {
		fmt.Printf("  #%d  %s (%s)  score=%.1f  %s\n",
			s.ID, s.SuggestedUserName, s.Kind, s.Score, s.Reason)
	}
}

func printUsage() {
	fmt.Println("Yamsoo Suggestion Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  suggest generate           Scan the relationship graph and create sibling suggestions")
	fmt.Println("  suggest list [options]     List a user's pending suggestions")
	fmt.Println()
	fmt.Println("List Options:")
	fmt.Println("  -user <id>    User ID to list pending suggestions for (required)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Generate suggestions for everyone")
	fmt.Println("  suggest generate")
	fmt.Println()
	fmt.Println("  # Show pending suggestions for user 42")
	fmt.Println("  suggest list -user 42")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH    SQLite database path (default: ./yamsoo.db)")
	fmt.Println("  DB_URL     PostgreSQL or MySQL connection URL")
}
