package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/models"
)

// courseColumns is the column set selected on every course read path:
// all course fields plus the owner's public fields joined from users.
var courseColumns = []string{
	"c.course_id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"u.first_name",
	"u.last_name",
	"u.email",
	"c.created_at",
	"c.updated_at",
}

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository]. Queries are built with squirrel so the read paths share
// one column list and the update path only rewrites mutable fields.
type courseRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetAllCourses returns every stored course with its owner's public fields
// populated, ordered by course id.
func (r *courseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(courseColumns...).
		From("courses c").
		Join("users u ON u.user_id = c.user_id").
		OrderBy("c.course_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.GetAllCourses").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	// non-nil so an empty result encodes as [] rather than null
	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error scanning course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// GetCourse returns the course with the given id, owner populated, or
// [ErrCourseNotFound] if no such row exists.
func (r *courseRepository) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(courseColumns...).
		From("courses c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.course_id": courseID}).
		ToSql()
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}
		log.Err(err).Str("func", "*courseRepository.GetCourse").Msg("error scanning course row")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

// CreateCourse persists a new course and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt). The owner projection is not populated:
// creation responds with a Location header only.
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("courses").
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID).
		Suffix("RETURNING course_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*courseRepository.CreateCourse").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error inserting course")
		return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return course, nil
}

// UpdateCourse rewrites the mutable fields of an existing course. The owner
// reference is deliberately absent from the SET clause: ownership is fixed
// at creation.
//
// Returns [ErrCourseNotFound] if no row matched the course id.
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", course.EstimatedTime).
		Set("materials_needed", course.MaterialsNeeded).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"course_id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.UpdateCourse").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error updating course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes the course with the given id.
// Returns [ErrCourseNotFound] if no row matched.
func (r *courseRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("courses").
		Where(sq.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.DeleteCourse").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error deleting course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows used by scanCourse.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCourse reads one joined course row in [courseColumns] order.
func scanCourse(row rowScanner) (models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&course.User.FirstName,
		&course.User.LastName,
		&course.User.Email,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	return course, err
}
