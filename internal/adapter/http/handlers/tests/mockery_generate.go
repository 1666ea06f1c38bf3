package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskStore --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_store_mock.go --with-expecter
