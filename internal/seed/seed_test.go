package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-portal/internal/models"
	"github.com/noah-isme/edu-portal/internal/store"
)

func TestApplyPopulatesStore(t *testing.T) {
	st := store.New()
	data := Apply(st)

	require.Equal(t, 5, st.Users.Len())
	require.Equal(t, 1, st.Classrooms.Len())
	require.Equal(t, 1, st.Assignments.Len())
	require.Equal(t, 3, st.Grades.Len())
	require.Equal(t, 1, st.Announcements.Len())
	require.Equal(t, 2, st.Chats.Len())

	require.Equal(t, models.RoleTeacher, data.Teacher.Role)
	require.Equal(t, models.RoleStudent, data.Student.Role)
	require.Equal(t, models.RoleParent, data.Parent.Role)
}

func TestApplyReferencesResolve(t *testing.T) {
	st := store.New()
	data := Apply(st)

	classroom, ok := st.Classrooms.Get(data.Classroom.ID)
	require.True(t, ok)

	teacher, ok := st.Users.Get(classroom.TeacherID)
	require.True(t, ok)
	require.True(t, teacher.IsTeacher())

	for _, studentID := range classroom.StudentIDs {
		student, ok := st.Users.Get(studentID)
		require.True(t, ok)
		require.True(t, student.IsStudent())
	}

	assignment, ok := st.Assignments.Get(data.Assignment.ID)
	require.True(t, ok)
	require.Equal(t, classroom.ID, assignment.ClassroomID)
	require.Len(t, assignment.Submissions, 1)
	require.Equal(t, data.Student.ID, assignment.Submissions[0].StudentID)

	require.NotNil(t, data.Parent.Parent)
	for _, childID := range data.Parent.Parent.ChildIDs {
		child, ok := st.Users.Get(childID)
		require.True(t, ok)
		require.True(t, child.IsStudent())
	}

	for _, chat := range data.Chats {
		stored, ok := st.Chats.Get(chat.ID)
		require.True(t, ok)
		for _, participantID := range stored.ParticipantIDs {
			_, ok := st.Users.Get(participantID)
			require.True(t, ok)
		}
		for _, msg := range stored.Messages {
			require.True(t, stored.HasParticipant(msg.SenderID))
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	st := store.New()
	Apply(st)
	Apply(st)

	require.Equal(t, 5, st.Users.Len())
	require.Equal(t, 2, st.Chats.Len())
	require.Equal(t, 1, st.Assignments.Len())
}
