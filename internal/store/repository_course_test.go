package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-api/models"
)

func newTestCourseRepo(t *testing.T) (*courseRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &courseRepository{
		db:      wrapped,
		logger:  wrapped.logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func courseRowColumns() []string {
	return []string{
		"course_id", "title", "description", "estimated_time", "materials_needed",
		"user_id", "first_name", "last_name", "email", "created_at", "updated_at",
	}
}

func TestGetAllCourses_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	now := time.Now()
	estimated := "12 hours"
	rows := sqlmock.NewRows(courseRowColumns()).
		AddRow(1, "Build a Basic Bookcase", "High-end furniture...", estimated, nil,
			1, "Joe", "Smith", "joe@smith.com", now, now).
		AddRow(2, "Learn How to Program", "In this course...", nil, "Notebook",
			2, "Sally", "Jones", "sally@jones.com", now, now)

	mock.ExpectQuery("SELECT c.course_id").WillReturnRows(rows)

	courses, err := repo.GetAllCourses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].User.Email != "joe@smith.com" {
		t.Errorf("expected owner email to be joined, got %q", courses[0].User.Email)
	}
	if courses[0].EstimatedTime == nil || *courses[0].EstimatedTime != estimated {
		t.Errorf("expected estimated time %q, got %v", estimated, courses[0].EstimatedTime)
	}
	if courses[0].MaterialsNeeded != nil {
		t.Errorf("expected nil materials, got %v", *courses[0].MaterialsNeeded)
	}
}

func TestGetAllCourses_Empty(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT c.course_id").
		WillReturnRows(sqlmock.NewRows(courseRowColumns()))

	courses, err := repo.GetAllCourses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if courses == nil {
		t.Fatal("expected non-nil slice for empty result")
	}
	if len(courses) != 0 {
		t.Fatalf("expected no courses, got %d", len(courses))
	}
}

func TestGetAllCourses_QueryError(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT c.course_id").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAllCourses(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(courseRowColumns()).
		AddRow(7, "Build a Basic Bookcase", "High-end furniture...", nil, nil,
			1, "Joe", "Smith", "joe@smith.com", now, now)

	mock.ExpectQuery("SELECT c.course_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	course, err := repo.GetCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.ID != 7 {
		t.Errorf("expected course id 7, got %d", course.ID)
	}
	if course.UserID != 1 {
		t.Errorf("expected owner id 1, got %d", course.UserID)
	}
}

func TestGetCourse_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT c.course_id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(courseRowColumns()))

	_, err := repo.GetCourse(context.Background(), 99)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCreateCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO courses").
		WithArgs("Build a Basic Bookcase", "High-end furniture...", nil, nil, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "created_at", "updated_at"}).
			AddRow(3, now, now))

	course := models.Course{
		Title:       "Build a Basic Bookcase",
		Description: "High-end furniture...",
		UserID:      1,
	}

	created, err := repo.CreateCourse(context.Background(), course)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected course id 3, got %d", created.ID)
	}
	if created.UserID != 1 {
		t.Errorf("owner must survive creation, got %d", created.UserID)
	}
}

func TestCreateCourse_DBError(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(errors.New("disk full"))

	_, err := repo.CreateCourse(context.Background(), models.Course{Title: "t", Description: "d", UserID: 1})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestUpdateCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE courses").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateCourse(context.Background(), models.Course{
		ID:          7,
		Title:       "New Title",
		Description: "New description",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCourse_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE courses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCourse(context.Background(), models.Course{ID: 99, Title: "t", Description: "d"})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM courses").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCourse(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCourse_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM courses").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCourse(context.Background(), 99)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourse_DBError(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM courses").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	err := repo.DeleteCourse(context.Background(), 7)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
