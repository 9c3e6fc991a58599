// Command seed loads a small set of demo instructors, courses, students and
// enrollments into the database. Intended for local development only; it
// skips records that already exist.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/edusync/sis-backend/internal/config"
	"github.com/jackc/pgx/v5"
)

type seedInstructor struct {
	name    string
	email   string
	phone   string
	courses []seedCourse
}

type seedCourse struct {
	name        string
	description string
	schedule    string // RFC 3339
}

type seedStudent struct {
	name  string
	email string
	phone string
}

var instructors = []seedInstructor{
	{
		name: "Maria Gonzales", email: "maria.gonzales@example.edu", phone: "+15550100201",
		courses: []seedCourse{
			{name: "Intro to Programming", description: "Variables, control flow, functions.", schedule: "2026-09-07T09:00:00Z"},
			{name: "Data Structures", description: "Lists, trees, hash tables.", schedule: "2026-09-08T13:00:00Z"},
		},
	},
	{
		name: "Tom Albright", email: "tom.albright@example.edu", phone: "+15550100202",
		courses: []seedCourse{
			{name: "Databases", description: "Relational modelling and SQL.", schedule: "2026-09-09T10:00:00Z"},
		},
	},
}

var students = []seedStudent{
	{name: "Alice Tan", email: "alice.tan@example.edu", phone: "+15550100301"},
	{name: "Bob Okafor", email: "bob.okafor@example.edu", phone: "+15550100302"},
	{name: "Chloe Dubois", email: "chloe.dubois@example.edu", phone: "+15550100303"},
}

func main() {
	cfg := config.Load()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer conn.Close(ctx)

	courseIDs := make([]int, 0)
	for _, ins := range instructors {
		var instructorID int
		err := conn.QueryRow(ctx,
			`INSERT INTO instructors (name, email, phone) VALUES ($1, $2, $3)
			 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			ins.name, ins.email, ins.phone,
		).Scan(&instructorID)
		if err != nil {
			log.Fatalf("seed instructor %s: %v", ins.email, err)
		}

		for _, course := range ins.courses {
			schedule, err := time.Parse(time.RFC3339, course.schedule)
			if err != nil {
				log.Fatalf("parse schedule for %s: %v", course.name, err)
			}
			var courseID int
			err = conn.QueryRow(ctx,
				`INSERT INTO courses (name, description, instructor_id, schedule)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (name, instructor_id) WHERE NOT is_deleted DO UPDATE SET description = EXCLUDED.description
				 RETURNING id`,
				course.name, course.description, instructorID, schedule,
			).Scan(&courseID)
			if err != nil {
				log.Fatalf("seed course %s: %v", course.name, err)
			}
			courseIDs = append(courseIDs, courseID)
		}
	}

	studentIDs := make([]int, 0, len(students))
	for _, s := range students {
		var studentID int
		err := conn.QueryRow(ctx,
			`INSERT INTO students (name, email, phone) VALUES ($1, $2, $3)
			 ON CONFLICT (email) WHERE NOT is_deleted DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			s.name, s.email, s.phone,
		).Scan(&studentID)
		if err != nil {
			log.Fatalf("seed student %s: %v", s.email, err)
		}
		studentIDs = append(studentIDs, studentID)
	}

	// Enroll every student into the first course so the API has data to show.
	if len(courseIDs) > 0 {
		for _, studentID := range studentIDs {
			_, err := conn.Exec(ctx,
				`INSERT INTO enrollments (student_id, course_id, status)
				 VALUES ($1, $2, 'active')
				 ON CONFLICT (student_id, course_id) DO NOTHING`,
				studentID, courseIDs[0])
			if err != nil {
				log.Fatalf("seed enrollment for student %d: %v", studentID, err)
			}
		}
	}

	fmt.Printf("seeded %d instructors, %d courses, %d students\n",
		len(instructors), len(courseIDs), len(studentIDs))
}
