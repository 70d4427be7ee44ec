// Package access decides which franchises an authenticated caller may act on.
package access
