// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// courseService is the concrete implementation of CourseService.
type courseService struct {
	courseRepository store.CourseRepository

	// validator checks update payloads. Update input is validated here, not
	// in the decorator, because the checks must run after the existence and
	// ownership checks: a missing course stays 404 and a foreign course
	// stays 403 no matter what the body carries.
	validator validators.Validator

	logger *logger.Logger
}

// NewCourseService constructs a new CourseService wired to the given
// CourseRepository.
func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validators.NewInputValidator(),
		logger:           logger,
	}
}

// ListCourses returns all courses with their owners embedded.
func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.courseRepository.GetAllCourses(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("course listing ended with error")
		return nil, fmt.Errorf("course listing ended with error: %w", err)
	}

	return courses, nil
}

// GetCourse returns the course with the given id, owner embedded.
// Returns store.ErrCourseNotFound if no such course exists.
func (c *courseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	course, err := c.courseRepository.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return models.Course{}, err
		}

		logger.FromContext(ctx).Err(err).Int64("course_id", courseID).Msg("course lookup ended with error")
		return models.Course{}, fmt.Errorf("course lookup ended with error: %w", err)
	}

	return course, nil
}

// CreateCourse persists a new course owned by the given principal.
// Ownership is assigned here from the authenticated user; nothing a client
// sends can place the course under another account.
func (c *courseService) CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error) {
	course := models.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          owner.ID,
	}

	createdCourse, err := c.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", owner.ID).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return createdCourse, nil
}

// UpdateCourse replaces the mutable fields of an existing course.
//
// Checks run in a fixed order: existence, then ownership, then input
// validation, then the write. A missing course yields store.ErrCourseNotFound
// even for an invalid body; an existing course owned by somebody else yields
// ErrNotCourseOwner even for an invalid body. Only an owner's request is
// validated, and only a valid one reaches the repository. The owner column
// is never part of the update.
func (c *courseService) UpdateCourse(ctx context.Context, principal models.User, courseID int64, input models.CourseInput) error {
	existingCourse, err := c.courseRepository.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return err
		}

		logger.FromContext(ctx).Err(err).Int64("course_id", courseID).Msg("course lookup before update ended with error")
		return fmt.Errorf("course lookup before update ended with error: %w", err)
	}

	if existingCourse.UserID != principal.ID {
		logger.FromContext(ctx).Debug().Int64("course_id", courseID).Int64("principal_id", principal.ID).Msg("update rejected: not the owner")
		return ErrNotCourseOwner
	}

	if err := c.validator.Validate(ctx, input); err != nil {
		return err
	}

	course := models.Course{
		ID:              courseID,
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
	}

	if err := c.courseRepository.UpdateCourse(ctx, course); err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return err
		}

		logger.FromContext(ctx).Err(err).Int64("course_id", courseID).Msg("course update ended with error")
		return fmt.Errorf("course update ended with error: %w", err)
	}

	return nil
}

// DeleteCourse removes an existing course. Existence is checked before
// ownership, same as UpdateCourse.
func (c *courseService) DeleteCourse(ctx context.Context, principal models.User, courseID int64) error {
	existingCourse, err := c.courseRepository.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return err
		}

		logger.FromContext(ctx).Err(err).Int64("course_id", courseID).Msg("course lookup before delete ended with error")
		return fmt.Errorf("course lookup before delete ended with error: %w", err)
	}

	if existingCourse.UserID != principal.ID {
		logger.FromContext(ctx).Debug().Int64("course_id", courseID).Int64("principal_id", principal.ID).Msg("delete rejected: not the owner")
		return ErrNotCourseOwner
	}

	if err := c.courseRepository.DeleteCourse(ctx, courseID); err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return err
		}

		logger.FromContext(ctx).Err(err).Int64("course_id", courseID).Msg("course deletion ended with error")
		return fmt.Errorf("course deletion ended with error: %w", err)
	}

	return nil
}
