// Package mocks holds generated mocks for tests.
package mocks

//go:generate mockgen -destination=mock_surface.go -package=mocks github.com/young1lin/gridconsole/console Surface
