// Package validator 负责把不可信的提交体规范化为带类型的数据记录。
// 每个字段独立校验，所有违规项一次性收集；返回的记录只包含通过校验的字段。
package validator

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"campus-admin/internal/dto"
	"campus-admin/internal/models"
)

// 邮箱采用宽松规则：单个 @ 且域名带点即可，不做完整 RFC 校验
var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// normalizeString 去除首尾空白，空白串归一为 nil
func normalizeString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ValidateStudent 校验学生信息提交
func ValidateStudent(payload *dto.StudentPayload) (*models.Student, []string) {
	var violations []string
	student := &models.Student{}

	name := normalizeString(payload.Name)
	switch {
	case name == nil:
		violations = append(violations, "姓名不能为空")
	case utf8.RuneCountInString(*name) > 100:
		violations = append(violations, "姓名长度不能超过 100 字")
	default:
		student.Name = *name
	}

	if gender := normalizeString(payload.Gender); gender != nil {
		if *gender != "男" && *gender != "女" {
			violations = append(violations, "性别只能是 男 或 女")
		} else {
			student.Gender = gender
		}
	}

	if payload.Age != nil {
		age := *payload.Age
		if age < 0 || age > 120 {
			violations = append(violations, "年龄应在 0~120 之间")
		} else {
			rounded := int(math.Round(age))
			student.Age = &rounded
		}
	}

	if className := normalizeString(payload.ClassName); className != nil {
		if utf8.RuneCountInString(*className) > 120 {
			violations = append(violations, "班级名称长度不能超过 120 字")
		} else {
			student.ClassName = className
		}
	}

	return student, violations
}

// ValidateCourse 校验课程信息提交
// 学分先做范围校验再四舍五入到一位小数，不做静默截断。
func ValidateCourse(payload *dto.CoursePayload) (*models.Course, []string) {
	var violations []string
	course := &models.Course{}

	name := normalizeString(payload.Name)
	switch {
	case name == nil:
		violations = append(violations, "课程名称不能为空")
	case utf8.RuneCountInString(*name) > 150:
		violations = append(violations, "课程名称过长")
	default:
		course.Name = *name
	}

	code := normalizeString(payload.Code)
	switch {
	case code == nil:
		violations = append(violations, "课程编号不能为空")
	case utf8.RuneCountInString(*code) > 50:
		violations = append(violations, "课程编号过长")
	default:
		course.Code = *code
	}

	if payload.Credit != nil {
		credit := *payload.Credit
		if credit < 0 || credit > 60 {
			violations = append(violations, "学分应在 0~60 之间")
		} else {
			rounded := math.Round(credit*10) / 10
			course.Credit = &rounded
		}
	}

	if teacher := normalizeString(payload.Teacher); teacher != nil {
		if utf8.RuneCountInString(*teacher) > 120 {
			violations = append(violations, "任课教师名称过长")
		} else {
			course.Teacher = teacher
		}
	}

	return course, violations
}

// ValidateTeacher 校验教师信息提交
// 联系电话仅剔除内部空白，不做号段校验。
func ValidateTeacher(payload *dto.TeacherPayload) (*models.Teacher, []string) {
	var violations []string
	teacher := &models.Teacher{}

	name := normalizeString(payload.Name)
	switch {
	case name == nil:
		violations = append(violations, "教师姓名不能为空")
	case utf8.RuneCountInString(*name) > 120:
		violations = append(violations, "教师姓名过长")
	default:
		teacher.Name = *name
	}

	if title := normalizeString(payload.Title); title != nil {
		if utf8.RuneCountInString(*title) > 120 {
			violations = append(violations, "职称信息过长")
		} else {
			teacher.Title = title
		}
	}

	if phoneRaw := normalizeString(payload.Phone); phoneRaw != nil {
		phone := whitespacePattern.ReplaceAllString(*phoneRaw, "")
		if utf8.RuneCountInString(phone) > 40 {
			violations = append(violations, "联系电话过长")
		} else {
			teacher.Phone = &phone
		}
	}

	if email := normalizeString(payload.Email); email != nil {
		if !emailPattern.MatchString(*email) {
			violations = append(violations, "请输入合法的邮箱地址")
		} else if utf8.RuneCountInString(*email) > 160 {
			violations = append(violations, "邮箱地址过长")
		} else {
			teacher.Email = email
		}
	}

	return teacher, violations
}
