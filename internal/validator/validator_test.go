package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-admin/internal/dto"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateStudentValid(t *testing.T) {
	student, violations := ValidateStudent(&dto.StudentPayload{
		Name:      "  张三  ",
		Gender:    "男",
		Age:       floatPtr(18.4),
		ClassName: "高三(2)班",
	})

	require.Empty(t, violations)
	assert.Equal(t, "张三", student.Name)
	require.NotNil(t, student.Gender)
	assert.Equal(t, "男", *student.Gender)
	require.NotNil(t, student.Age)
	assert.Equal(t, 18, *student.Age)
	require.NotNil(t, student.ClassName)
	assert.Equal(t, "高三(2)班", *student.ClassName)
}

func TestValidateStudentEmptyOptionalToNil(t *testing.T) {
	student, violations := ValidateStudent(&dto.StudentPayload{
		Name:      "李四",
		Gender:    "   ",
		ClassName: "",
	})

	require.Empty(t, violations)
	assert.Nil(t, student.Gender)
	assert.Nil(t, student.Age)
	assert.Nil(t, student.ClassName)
}

func TestValidateStudentMissingName(t *testing.T) {
	student, violations := ValidateStudent(&dto.StudentPayload{Name: "   "})

	require.Len(t, violations, 1)
	assert.Equal(t, "姓名不能为空", violations[0])
	assert.Empty(t, student.Name)
}

func TestValidateStudentCollectsAllViolations(t *testing.T) {
	_, violations := ValidateStudent(&dto.StudentPayload{
		Name:   "",
		Gender: "未知",
		Age:    floatPtr(150),
	})

	assert.ElementsMatch(t, []string{
		"姓名不能为空",
		"性别只能是 男 或 女",
		"年龄应在 0~120 之间",
	}, violations)
}

func TestValidateStudentNameTooLong(t *testing.T) {
	_, violations := ValidateStudent(&dto.StudentPayload{Name: strings.Repeat("甲", 101)})

	require.Len(t, violations, 1)
	assert.Equal(t, "姓名长度不能超过 100 字", violations[0])
}

func TestValidateStudentAgeOutOfRangeNotClamped(t *testing.T) {
	student, violations := ValidateStudent(&dto.StudentPayload{Name: "王五", Age: floatPtr(-1)})

	require.Len(t, violations, 1)
	assert.Equal(t, "年龄应在 0~120 之间", violations[0])
	assert.Nil(t, student.Age)
}

func TestValidateCourseValid(t *testing.T) {
	course, violations := ValidateCourse(&dto.CoursePayload{
		Name:    "高等数学",
		Code:    " MATH101 ",
		Credit:  floatPtr(3.14),
		Teacher: "陈教授",
	})

	require.Empty(t, violations)
	assert.Equal(t, "高等数学", course.Name)
	assert.Equal(t, "MATH101", course.Code)
	require.NotNil(t, course.Credit)
	assert.Equal(t, 3.1, *course.Credit)
	require.NotNil(t, course.Teacher)
	assert.Equal(t, "陈教授", *course.Teacher)
}

func TestValidateCourseMissingRequired(t *testing.T) {
	course, violations := ValidateCourse(&dto.CoursePayload{})

	assert.ElementsMatch(t, []string{"课程名称不能为空", "课程编号不能为空"}, violations)
	assert.Empty(t, course.Name)
	assert.Empty(t, course.Code)
}

func TestValidateCourseCreditOutOfRange(t *testing.T) {
	course, violations := ValidateCourse(&dto.CoursePayload{
		Name:   "线性代数",
		Code:   "MATH102",
		Credit: floatPtr(60.5),
	})

	require.Len(t, violations, 1)
	assert.Equal(t, "学分应在 0~60 之间", violations[0])
	assert.Nil(t, course.Credit)
}

func TestValidateCourseCodeTooLong(t *testing.T) {
	_, violations := ValidateCourse(&dto.CoursePayload{
		Name: "数据结构",
		Code: strings.Repeat("X", 51),
	})

	require.Len(t, violations, 1)
	assert.Equal(t, "课程编号过长", violations[0])
}

func TestValidateTeacherValid(t *testing.T) {
	teacher, violations := ValidateTeacher(&dto.TeacherPayload{
		Name:  "陈静",
		Title: "副教授",
		Phone: " 138 0013 8000 ",
		Email: "chenjing@example.edu.cn",
	})

	require.Empty(t, violations)
	assert.Equal(t, "陈静", teacher.Name)
	require.NotNil(t, teacher.Phone)
	assert.Equal(t, "13800138000", *teacher.Phone)
	require.NotNil(t, teacher.Email)
}

func TestValidateTeacherMissingName(t *testing.T) {
	_, violations := ValidateTeacher(&dto.TeacherPayload{Title: "讲师"})

	require.Len(t, violations, 1)
	assert.Equal(t, "教师姓名不能为空", violations[0])
}

func TestValidateTeacherEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.cn", true},
		{"zhang.san@school.edu.cn", true},
		{"not-an-email", false},
		{"two@@signs.cn", false},
		{"nodot@domain", false},
		{"has space@b.cn", false},
	}

	for _, tc := range cases {
		teacher, violations := ValidateTeacher(&dto.TeacherPayload{Name: "测试", Email: tc.email})
		if tc.valid {
			assert.Emptyf(t, violations, "邮箱 %s 应当通过", tc.email)
			require.NotNil(t, teacher.Email)
		} else {
			require.Lenf(t, violations, 1, "邮箱 %s 应当被拒绝", tc.email)
			assert.Equal(t, "请输入合法的邮箱地址", violations[0])
			assert.Nil(t, teacher.Email)
		}
	}
}

func TestValidateTeacherOptionalEmptyToNil(t *testing.T) {
	teacher, violations := ValidateTeacher(&dto.TeacherPayload{Name: "刘老师"})

	require.Empty(t, violations)
	assert.Nil(t, teacher.Title)
	assert.Nil(t, teacher.Phone)
	assert.Nil(t, teacher.Email)
}
