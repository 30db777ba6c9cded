package constants

import "fmt"

const (
	RoleStudent   = "student"
	RoleTeacher   = "teacher"
	RoleCounselor = "counselor"
)

// Role error message templates
const (
	ErrOnlyStudentsCanAccess   = "❌ Only students may access the %s feature."
	ErrOnlyTeachersCanAccess   = "❌ Only teachers or counselors may access the %s feature."
	ErrOnlyCounselorsCanAccess = "❌ Only counselors may access the %s feature."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorCounselor(feature string) string {
	return fmt.Sprintf(ErrOnlyCounselorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleCounselor,
	}

	StaffRoles = []string{
		RoleTeacher,
		RoleCounselor,
	}

	CounselorOnly = []string{
		RoleCounselor,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
