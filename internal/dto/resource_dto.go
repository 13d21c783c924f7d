package dto

// 三类资源的原始提交体。字段一律宽松接收，
// 规范化与校验统一由 internal/validator 完成。

// StudentPayload 学生信息提交
type StudentPayload struct {
	Name      string   `json:"name"`
	Gender    string   `json:"gender"`
	Age       *float64 `json:"age"`
	ClassName string   `json:"class_name"`
}

// CoursePayload 课程信息提交
type CoursePayload struct {
	Name    string   `json:"name"`
	Code    string   `json:"code"`
	Credit  *float64 `json:"credit"`
	Teacher string   `json:"teacher"`
}

// TeacherPayload 教师信息提交
type TeacherPayload struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
