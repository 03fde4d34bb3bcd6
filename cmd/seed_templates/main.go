package main

import (
	"log"
	"os"

	"ai-tutoring-be/internal/model"
	"ai-tutoring-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding Lesson Templates\n")

	templates := []model.LessonTemplate{
		{
			Category: "travel",
			Level:    "beginner",
			Name:     "Travel Basics",
			Slots: []model.TemplateSlot{
				{PlaceholderKey: "key_vocabulary", ContentType: "vocabulary", Position: 0, Instruction: "Essential travel words with simple definitions"},
				{PlaceholderKey: "sample_dialogue", ContentType: "dialogue", Position: 1, Instruction: "Short conversation at an airport check-in desk"},
				{PlaceholderKey: "practice_exercise", ContentType: "exercise", Position: 2, Instruction: "Fill-in-the-blank sentences using the vocabulary"},
			},
		},
		{
			Category: "travel",
			Level:    "intermediate",
			Name:     "Travel Conversations",
			Slots: []model.TemplateSlot{
				{PlaceholderKey: "key_vocabulary", ContentType: "vocabulary", Position: 0, Instruction: "Idiomatic travel phrases and their meanings"},
				{PlaceholderKey: "sample_dialogue", ContentType: "dialogue", Position: 1, Instruction: "Negotiating a hotel room upgrade"},
				{PlaceholderKey: "cultural_note", ContentType: "text", Position: 2, Instruction: "Short note on tipping customs"},
				{PlaceholderKey: "practice_exercise", ContentType: "exercise", Position: 3, Instruction: "Rewrite formal requests as polite questions"},
			},
		},
		{
			Category: "business",
			Level:    "beginner",
			Name:     "Office Small Talk",
			Slots: []model.TemplateSlot{
				{PlaceholderKey: "key_vocabulary", ContentType: "vocabulary", Position: 0, Instruction: "Common workplace words"},
				{PlaceholderKey: "sample_dialogue", ContentType: "dialogue", Position: 1, Instruction: "Greeting a colleague on Monday morning"},
				{PlaceholderKey: "practice_exercise", ContentType: "exercise", Position: 2, Instruction: "Match greetings to situations"},
			},
		},
		{
			Category: "business",
			Level:    "advanced",
			Name:     "Negotiation Language",
			Slots: []model.TemplateSlot{
				{PlaceholderKey: "key_vocabulary", ContentType: "vocabulary", Position: 0, Instruction: "Persuasion and concession phrases"},
				{PlaceholderKey: "sample_dialogue", ContentType: "dialogue", Position: 1, Instruction: "Salary negotiation between employee and manager"},
				{PlaceholderKey: "strategy_note", ContentType: "text", Position: 2, Instruction: "Brief explanation of hedging language"},
				{PlaceholderKey: "practice_exercise", ContentType: "exercise", Position: 3, Instruction: "Soften these direct statements"},
			},
		},
		{
			Category: "daily_life",
			Level:    "beginner",
			Name:     "Everyday Routines",
			Slots: []model.TemplateSlot{
				{PlaceholderKey: "key_vocabulary", ContentType: "vocabulary", Position: 0, Instruction: "Daily routine verbs"},
				{PlaceholderKey: "sample_dialogue", ContentType: "dialogue", Position: 1, Instruction: "Two friends planning their week"},
				{PlaceholderKey: "practice_exercise", ContentType: "exercise", Position: 2, Instruction: "Order the routine steps"},
			},
		},
	}

	for _, t := range templates {
		var existing model.LessonTemplate
		if err := db.Where("category = ? AND level = ?", t.Category, t.Level).First(&existing).Error; err == nil {
			color.Yellow("Template '%s/%s' already exists, skipping...", t.Category, t.Level)
			continue
		}

		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating template '%s/%s': %v", t.Category, t.Level, err)
		} else {
			color.Green("Created template: %s (%s/%s, %d slots)", t.Name, t.Category, t.Level, len(t.Slots))
		}
	}

	color.Cyan("\nTemplate seeding completed!")
}
