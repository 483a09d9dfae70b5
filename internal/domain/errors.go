package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the question catalog could not be loaded.
	ErrCatalogNotFound = errors.New("question catalog not found")
	// ErrUnknownSchool is returned when the submitted school is not in the roster.
	ErrUnknownSchool = errors.New("school not in roster")
	// ErrUnknownClass is returned when the class does not belong to the school.
	ErrUnknownClass = errors.New("class not offered by school")
	// ErrMissingStudentInfo is returned when the identification form is incomplete.
	ErrMissingStudentInfo = errors.New("student name, school and class are required")
	// ErrWrongPassphrase is returned on a failed teacher login. Retries are unlimited.
	ErrWrongPassphrase = errors.New("wrong teacher passphrase")
	// ErrNoSubmissions is returned when an export is requested for an empty set.
	ErrNoSubmissions = errors.New("no submissions to export")
)
