package main

import (
	"log"
	"os"

	"ai-tutoring-be/internal/model"
	"ai-tutoring-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// objectiveGroup is one curriculum topic with its ordered objectives.
// Catalog ids are assigned sequentially across groups, so the slice
// order below is the progression order.
type objectiveGroup struct {
	Topic      string
	Objectives []string
}

var catalog = []objectiveGroup{
	{
		Topic: "Basic Syntax & Data Types",
		Objectives: []string{
			"Define and use variables in Python.",
			"Identify and use different data types: integers, floats, strings, and booleans.",
			"Convert between different data types using type casting.",
			"Perform basic arithmetic operations (+, -, *, /, //, %, **).",
			"Use string operations like concatenation, slicing, and formatting.",
		},
	},
	{
		Topic: "Control Flow & Logic",
		Objectives: []string{
			"Write conditional statements using if, elif, and else.",
			"Use logical operators (and, or, not) to create complex conditions.",
			"Implement loops using for and while to automate repetitive tasks.",
			"Utilize the break and continue statements for loop control.",
			"Use nested loops to handle multi-dimensional data.",
		},
	},
	{
		Topic: "Functions & Modular Programming",
		Objectives: []string{
			"Define and call functions using def with parameters and return values.",
			"Use default and keyword arguments in function calls.",
			"Understand variable scope (global vs local variables).",
			"Use lambda functions for concise anonymous functions.",
			"Organize code into modules and import functions from other files.",
			"Use the __name__ variable to control script execution.",
		},
	},
	{
		Topic: "Data Structures: Lists, Tuples, Sets, and Dictionaries",
		Objectives: []string{
			"Create and manipulate lists (indexing, slicing, appending, removing).",
			"Iterate over lists using loops and list comprehensions.",
			"Understand and use tuples for immutable data storage.",
			"Differentiate between lists, sets, and dictionaries and when to use each.",
			"Create and manipulate dictionaries (adding, modifying, and retrieving values).",
			"Use dictionary comprehensions for efficient data handling.",
			"Use the zip() function to pair elements from multiple lists.",
		},
	},
	{
		Topic: "Working with Files & Input/Output",
		Objectives: []string{
			"Read and write files using Python's open() function.",
			"Handle user input using the input() function.",
			"Format strings dynamically using f-strings and .format().",
			"Work with CSV files using the csv module.",
		},
	},
	{
		Topic: "Error Handling & Debugging",
		Objectives: []string{
			"Use try and except blocks to handle errors gracefully.",
			"Understand common Python errors (SyntaxError, ValueError, TypeError, etc.).",
			"Debug Python scripts using print statements and debugging tools.",
			"Use finally and else clauses in error handling.",
		},
	},
	{
		Topic: "Object-Oriented Programming (OOP)",
		Objectives: []string{
			"Define and use classes and objects in Python.",
			"Understand instance variables and class variables.",
			"Use constructors (__init__) and destructors (__del__).",
			"Implement inheritance and method overriding.",
			"Use Python's built-in super() function.",
			"Understand polymorphism and encapsulation.",
			"Use @classmethod and @staticmethod decorators.",
		},
	},
	{
		Topic: "Python Libraries & Modules",
		Objectives: []string{
			"Import and use Python's built-in modules like math, random, datetime, and os.",
			"Install and use external libraries using pip.",
			"Work with the datetime module for time manipulation.",
			"Use the json module to parse and store JSON data.",
			"Work with APIs using the requests module.",
		},
	},
	{
		Topic: "Advanced Data Handling",
		Objectives: []string{
			"Use list comprehensions for efficient data transformation.",
			"Understand and use generators (yield) for memory-efficient loops.",
			"Handle large datasets using Python's built-in pandas module.",
			"Sort and filter data using Python's sorted() and filtering functions.",
		},
	},
	{
		Topic: "Regular Expressions & String Manipulation",
		Objectives: []string{
			"Use the re module for pattern matching.",
			"Extract information from text using regex (findall, search, match).",
			"Replace text using regex (sub method).",
			"Validate user input with regular expressions.",
		},
	},
	{
		Topic: "Working with Databases",
		Objectives: []string{
			"Use SQLite with Python for simple databases.",
			"Perform CRUD (Create, Read, Update, Delete) operations using sqlite3.",
			"Use parameterized queries to prevent SQL injection.",
		},
	},
	{
		Topic: "Introduction to Automation",
		Objectives: []string{
			"Use Python for task automation (e.g., renaming files, automating emails).",
			"Work with the os and shutil modules for file management.",
			"Automate web browser interactions using selenium.",
		},
	},
	{
		Topic: "Introduction to Machine Learning",
		Objectives: []string{
			"Understand the basics of machine learning.",
			"Use numpy and pandas for data manipulation.",
			"Train a simple model using scikit-learn.",
		},
	},
}

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding learning objectives...")

	id := 0
	inserted := 0
	for _, group := range catalog {
		for _, objective := range group.Objectives {
			id++
			row := model.LearningObjective{
				Id:        id,
				Topic:     group.Topic,
				Objective: objective,
			}
			result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
			if result.Error != nil {
				log.Printf("Error inserting objective %d: %v", id, result.Error)
				continue
			}
			inserted += int(result.RowsAffected)
		}
	}

	log.Printf("✅ Seed complete: %d objectives in catalog, %d newly inserted.", id, inserted)
}
