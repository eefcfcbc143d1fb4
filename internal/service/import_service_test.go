package service

import (
	"strings"
	"testing"

	"gradtrak_backend/internal/credits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importCategories() []credits.Category {
	return []credits.Category{
		{ID: 1, Name: "English", RequiredCredits: 4, DisplayOrder: 1},
		{ID: 2, Name: "Mathematics", RequiredCredits: 3, DisplayOrder: 2},
	}
}

func TestParseCourseRows(t *testing.T) {
	csvData := strings.Join([]string{
		"student_id,course_name,credits,category,term,grade,dual_credit,dual_credit_type",
		"7,English 9,1.0,1,2024-T1,A,,",
		"7,Algebra I,1.0,Mathematics,2024-T1,B,no,",
		"8,Comp I,1.0,,2024-T2,A,yes,both",
	}, "\n")

	courses, rowErrors := ParseCourseRows(strings.NewReader(csvData), importCategories())

	require.Empty(t, rowErrors)
	require.Len(t, courses, 3)

	assert.Equal(t, uint(7), courses[0].StudentID)
	assert.Equal(t, "English 9", courses[0].Name)
	require.NotNil(t, courses[0].CategoryID)
	assert.Equal(t, uint(1), *courses[0].CategoryID)

	// legacy name-based category resolved at the import boundary
	require.NotNil(t, courses[1].CategoryID)
	assert.Equal(t, uint(2), *courses[1].CategoryID)

	assert.Nil(t, courses[2].CategoryID)
	assert.True(t, courses[2].IsDualCredit)
	assert.Equal(t, credits.DualCreditBoth, courses[2].DualCreditType)
}

func TestParseCourseRowsBadRows(t *testing.T) {
	csvData := strings.Join([]string{
		"student_id,course_name,credits,category,term,grade,dual_credit,dual_credit_type",
		"not-a-number,English 9,1.0,1,2024-T1,A,,",
		"7,,1.0,1,2024-T1,A,,",
		"7,History,abc,1,2024-T1,A,,",
		"7,Mystery Elective,0.5,Basket Weaving,2024-T1,A,,",
		"7,Valid Course,0.5,1,2024-T1,A,,",
	}, "\n")

	courses, rowErrors := ParseCourseRows(strings.NewReader(csvData), importCategories())

	// the unknown-category row is imported uncategorized, plus the valid row
	require.Len(t, courses, 2)
	assert.Equal(t, "Mystery Elective", courses[0].Name)
	assert.Nil(t, courses[0].CategoryID)
	assert.Equal(t, "Valid Course", courses[1].Name)

	require.Len(t, rowErrors, 4)
	assert.Equal(t, 2, rowErrors[0].Line)
	assert.Contains(t, rowErrors[0].Message, "student_id")
	assert.Contains(t, rowErrors[3].Message, "Basket Weaving")
}

func TestParseCourseRowsUnknownNumericCategory(t *testing.T) {
	csvData := strings.Join([]string{
		"student_id,course_name,credits,category,term,grade,dual_credit,dual_credit_type",
		"7,Orphan Course,1.0,99,2024-T1,A,,",
	}, "\n")

	courses, rowErrors := ParseCourseRows(strings.NewReader(csvData), importCategories())

	require.Len(t, courses, 1)
	assert.Nil(t, courses[0].CategoryID)
	require.Len(t, rowErrors, 1)
	assert.Contains(t, rowErrors[0].Message, `unknown category "99"`)
}

func TestParseCourseRowsWithoutHeader(t *testing.T) {
	csvData := "7,English 9,1.0,1,2024-T1,A,,\n"

	courses, rowErrors := ParseCourseRows(strings.NewReader(csvData), importCategories())

	assert.Empty(t, rowErrors)
	require.Len(t, courses, 1)
	assert.Equal(t, "English 9", courses[0].Name)
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("yes"))
	assert.True(t, parseBool("TRUE"))
	assert.True(t, parseBool(" 1 "))
	assert.False(t, parseBool("no"))
	assert.False(t, parseBool(""))
}
