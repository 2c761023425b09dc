// Package seed populates a store with the demo fixtures the portal ships
// with: three accounts (one per role), a classroom, an assignment with one
// graded submission, a grade sheet, an announcement and two conversations.
package seed

import (
	"time"

	"github.com/noah-isme/edu-portal/internal/models"
	"github.com/noah-isme/edu-portal/internal/store"
)

// Data exposes handles to the seeded records for demos and tests.
type Data struct {
	Teacher    models.User
	Student    models.User
	Parent     models.User
	Classroom  models.Classroom
	Assignment models.Assignment
	Chats      []models.Chat
}

// Apply inserts the demo fixtures. Records carry fixed ids, so applying to
// an already-seeded store replaces the fixtures instead of duplicating them.
func Apply(st *store.Store) Data {
	now := time.Now()

	teacher := models.User{
		ID:          "user-teacher-1",
		Email:       "teacher@edu.com",
		Secret:      "password",
		DisplayName: "John Smith",
		Role:        models.RoleTeacher,
		Avatar:      "👨‍🏫",
		Teacher:     &models.TeacherProfile{Subjects: []string{"Mathematics", "Physics"}},
		CreatedAt:   now,
	}
	student := models.User{
		ID:          "user-student-1",
		Email:       "student@edu.com",
		Secret:      "password",
		DisplayName: "Sarah Johnson",
		Role:        models.RoleStudent,
		Avatar:      "👩‍🎓",
		Student:     &models.StudentProfile{GradeLevel: "Grade 10"},
		CreatedAt:   now,
	}
	parent := models.User{
		ID:          "user-parent-1",
		Email:       "parent@edu.com",
		Secret:      "password",
		DisplayName: "Michael Brown",
		Role:        models.RoleParent,
		Avatar:      "👨‍👧",
		Parent:      &models.ParentProfile{ChildIDs: []string{student.ID}},
		CreatedAt:   now,
	}
	teacher2 := models.User{
		ID:          "user-teacher-2",
		Email:       "emily.davis@edu.com",
		Secret:      "password",
		DisplayName: "Emily Davis",
		Role:        models.RoleTeacher,
		Avatar:      "👩‍🏫",
		Teacher:     &models.TeacherProfile{Subjects: []string{"English"}},
		CreatedAt:   now,
	}
	student2 := models.User{
		ID:          "user-student-2",
		Email:       "david.wilson@edu.com",
		Secret:      "password",
		DisplayName: "David Wilson",
		Role:        models.RoleStudent,
		Avatar:      "👨‍🎓",
		Student:     &models.StudentProfile{GradeLevel: "Grade 10"},
		CreatedAt:   now,
	}

	for _, user := range []models.User{teacher, student, parent, teacher2, student2} {
		st.Users.Upsert(user)
	}

	classroom := models.Classroom{
		ID:         "classroom-1",
		Name:       "Mathematics Grade 10",
		TeacherID:  teacher.ID,
		StudentIDs: []string{student.ID, student2.ID},
		Schedule:   "Mon, Wed, Fri 9:00 AM",
		Materials: []models.Material{
			{ID: "material-1", Name: "Algebra Basics.pdf", Kind: "pdf", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			{ID: "material-2", Name: "Geometry Introduction.pptx", Kind: "ppt", Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		},
		CreatedAt: now,
	}
	st.Classrooms.Upsert(classroom)

	assignment := models.Assignment{
		ID:          "assignment-1",
		Title:       "Algebra Problem Set",
		Description: "Complete problems 1-20 from chapter 3",
		DueDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ClassroomID: classroom.ID,
		Submissions: []models.Submission{
			{
				StudentID:     student.ID,
				FileReference: "algebra_solution.pdf",
				SubmittedAt:   time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
				Grade:         "A",
			},
		},
		CreatedAt: now,
	}
	st.Assignments.Upsert(assignment)

	for _, grade := range []models.Grade{
		{StudentID: student.ID, Subject: "Mathematics", Letter: "A", Progress: 95},
		{StudentID: student.ID, Subject: "Physics", Letter: "B+", Progress: 88},
		{StudentID: student.ID, Subject: "English", Letter: "A-", Progress: 92},
	} {
		st.Grades.Upsert(grade)
	}

	st.Announcements.Upsert(models.Announcement{
		ID:         "announcement-1",
		Title:      "School Holiday",
		Message:    "No classes on February 15th for professional development",
		Date:       time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		AuthorName: teacher.DisplayName,
	})

	chats := []models.Chat{
		{
			ID:             "chat-1",
			ParticipantIDs: []string{teacher.ID, student.ID},
			Messages: []models.Message{
				{
					ID:       "message-1",
					SenderID: teacher.ID,
					Text:     "Hi Sarah, how is the math assignment going?",
					SentAt:   now.Add(-1 * time.Hour),
					Type:     models.MessageTypeText,
				},
				{
					ID:       "message-2",
					SenderID: student.ID,
					Text:     "Almost done, Mr. Smith! Just finishing the last problem.",
					SentAt:   now.Add(-30 * time.Minute),
					Type:     models.MessageTypeText,
				},
			},
			CreatedAt: now,
		},
		{
			ID:             "chat-2",
			ParticipantIDs: []string{teacher.ID, parent.ID},
			Messages: []models.Message{
				{
					ID:       "message-3",
					SenderID: teacher.ID,
					Text:     "Parent-teacher meeting scheduled for Friday",
					SentAt:   now.Add(-24 * time.Hour),
					Type:     models.MessageTypeText,
				},
			},
			CreatedAt: now,
		},
	}
	for _, chat := range chats {
		st.Chats.Upsert(chat)
	}

	return Data{
		Teacher:    teacher,
		Student:    student,
		Parent:     parent,
		Classroom:  classroom,
		Assignment: assignment,
		Chats:      chats,
	}
}
