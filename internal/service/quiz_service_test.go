package service

import (
	"context"
	"errors"
	"testing"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuizServiceMocks() (*MockQuizRepository, *MockCourseRepository, *MockTransactionManager, QuizService) {
	quizzes := new(MockQuizRepository)
	courses := new(MockCourseRepository)
	tx := new(MockTransactionManager)
	tx.On("WithTransaction", mock.Anything).Return()
	return quizzes, courses, tx, NewQuizService(quizzes, courses, tx)
}

func TestQuizService_CreateQuiz(t *testing.T) {
	quizzes, courses, tx, svc := newQuizServiceMocks()
	course := &domain.Course{ID: "c1", Name: "Biology"}
	courses.On("GetCourseByID", mock.Anything, "c1").Return(course, nil)
	quizzes.On("CreateQuiz", mock.Anything, mock.AnythingOfType("*domain.Quiz")).
		Run(func(args mock.Arguments) {
			quiz := args.Get(1).(*domain.Quiz)
			quiz.ID = "q1"
			for i, question := range quiz.Questions {
				question.ID = []string{"qq1", "qq2"}[i]
			}
		}).Return(nil)

	out, err := svc.CreateQuiz(context.Background(), dto.CreateQuizRequest{
		Name:     " Cells ",
		CourseID: "c1",
		Questions: []dto.CreateQuestionRequest{
			{Title: "Cells divide?", CorrectAnswer: true},
			{Title: "Cells are made of steel?", CorrectAnswer: false},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "q1", out.ID)
	assert.Equal(t, "Cells", out.Name)
	assert.Equal(t, dto.CourseOutput{ID: "c1", Name: "Biology"}, out.Course)
	assert.Equal(t, 2, out.Questions.Count)
	assert.Equal(t, dto.QuestionOutput{ID: "qq1", Title: "Cells divide?", CorrectAnswer: true}, out.Questions.Items[0])
	assert.False(t, out.Questions.Items[1].CorrectAnswer)
	tx.AssertCalled(t, "WithTransaction", mock.Anything)
	quizzes.AssertExpectations(t)
}

func TestQuizService_CreateQuiz_CourseNotFound(t *testing.T) {
	quizzes, courses, _, svc := newQuizServiceMocks()
	courses.On("GetCourseByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.CreateQuiz(context.Background(), dto.CreateQuizRequest{
		Name:      "Quiz",
		CourseID:  "missing",
		Questions: []dto.CreateQuestionRequest{{Title: "A?", CorrectAnswer: true}},
	})

	assert.True(t, domain.HasCode(err, domain.CodeCourseNotFound))
	assert.Equal(t, "Course not found", err.Error())
	quizzes.AssertNotCalled(t, "CreateQuiz", mock.Anything, mock.Anything)
}

func TestQuizService_CreateQuiz_Validation(t *testing.T) {
	t.Run("missing course id", func(t *testing.T) {
		_, courses, tx, svc := newQuizServiceMocks()

		_, err := svc.CreateQuiz(context.Background(), dto.CreateQuizRequest{Name: "Quiz"})

		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
		courses.AssertNotCalled(t, "GetCourseByID", mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "WithTransaction", mock.Anything)
	})

	t.Run("no questions", func(t *testing.T) {
		quizzes, courses, _, svc := newQuizServiceMocks()
		courses.On("GetCourseByID", mock.Anything, "c1").Return(&domain.Course{ID: "c1"}, nil)

		_, err := svc.CreateQuiz(context.Background(), dto.CreateQuizRequest{Name: "Quiz", CourseID: "c1"})

		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "questions", verrs[0].Field)
		quizzes.AssertNotCalled(t, "CreateQuiz", mock.Anything, mock.Anything)
	})
}

func TestQuizService_CreateQuiz_RepositoryError(t *testing.T) {
	quizzes, courses, _, svc := newQuizServiceMocks()
	courses.On("GetCourseByID", mock.Anything, "c1").Return(&domain.Course{ID: "c1"}, nil)
	quizzes.On("CreateQuiz", mock.Anything, mock.Anything).Return(errors.New("ORA-00001"))

	_, err := svc.CreateQuiz(context.Background(), dto.CreateQuizRequest{
		Name:      "Quiz",
		CourseID:  "c1",
		Questions: []dto.CreateQuestionRequest{{Title: "A?"}},
	})

	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestQuizService_GetQuizDetails(t *testing.T) {
	quizzes, _, _, svc := newQuizServiceMocks()
	quiz := &domain.Quiz{ID: "q1", Name: "Quiz", Course: &domain.Course{ID: "c1", Name: "Course"}}
	quiz.AddQuestion("A?", true).ID = "qq1"
	quizzes.On("GetQuizByID", mock.Anything, "q1").Return(quiz, nil)
	quizzes.On("GetQuizByID", mock.Anything, "missing").Return(nil, nil)

	out, err := svc.GetQuizDetails(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Questions.Count)

	_, err = svc.GetQuizDetails(context.Background(), "missing")
	assert.True(t, domain.HasCode(err, domain.CodeQuizNotFound))
}

func TestQuizService_ListQuizzesByCourse(t *testing.T) {
	quizzes, courses, _, svc := newQuizServiceMocks()
	course := &domain.Course{ID: "c1", Name: "Course"}
	courses.On("GetCourseByID", mock.Anything, "c1").Return(course, nil)
	courses.On("GetCourseByID", mock.Anything, "missing").Return(nil, nil)
	quizzes.On("ListQuizzesByCourse", mock.Anything, "c1").Return([]*domain.Quiz{
		{ID: "q1", Name: "First", Course: course},
		{ID: "q2", Name: "Second", Course: course},
	}, nil)

	out, err := svc.ListQuizzesByCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "Second", out.Items[1].Name)

	_, err = svc.ListQuizzesByCourse(context.Background(), "missing")
	assert.True(t, domain.HasCode(err, domain.CodeCourseNotFound))
}
