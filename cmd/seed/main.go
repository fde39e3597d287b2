// Command seed fills the database with a generated community for local development.
package main

import (
	"context"
	"flag"
	"log"

	"sangha/internal/config"
	"sangha/internal/database"
	"sangha/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	users := flag.Int("users", defaults.Users, "Number of users to create")
	questions := flag.Int("questions", defaults.Questions, "Number of questions to ask")
	answers := flag.Int("answers", defaults.AnswersPerQuestion, "Maximum answers per question")
	follows := flag.Int("follows", defaults.FollowsPerUser, "Follow edges per user")
	votes := flag.Int("votes", defaults.VotesPerQuestion, "Maximum voters per question")
	clean := flag.Bool("clean", true, "Delete existing rows before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed for repeatable data (0 picks one)")
	flag.Parse()

	log.Printf("Seeding: %d users, %d questions, clean=%v", *users, *questions, *clean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	report, err := seed.Run(ctx, db, seed.Options{
		Users:              *users,
		Questions:          *questions,
		AnswersPerQuestion: *answers,
		FollowsPerUser:     *follows,
		VotesPerQuestion:   *votes,
		Clean:              *clean,
		Seed:               *randSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done: users=%d categories=%d questions=%d answers=%d follows=%d votes=%d notifications=%d",
		report.Users, report.Categories, report.Questions, report.Answers,
		report.Follows, report.Votes, report.Notifications)
	log.Printf("All seeded users share the password: %s", seed.DefaultPassword)
}
