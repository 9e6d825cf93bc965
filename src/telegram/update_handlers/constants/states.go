package constants

const (
	IDLE_STATE = ""
)

const (
	CLASSROOM_NAME_STATE = "classroom_name"
	SUBJECT_NAME_STATE   = "subject_name"
)

const (
	PERIOD_NAME_STATE     = "period_name"
	PERIOD_DURATION_STATE = "period_duration"
	PERIOD_SESSION_STATE  = "period_session"
)

const (
	TEACHER_NAME_STATE     = "teacher_name"
	TEACHER_PERIODS_STATE  = "teacher_periods"
	TEACHER_SUBJECTS_STATE = "teacher_subjects"
)

const (
	ABSENCE_TEACHER_STATE = "absence_teacher"
	ABSENCE_DATE_STATE    = "absence_date"
	HALFDAY_TEACHER_STATE = "halfday_teacher"
	HALFDAY_DATE_STATE    = "halfday_date"
	HALFDAY_PERIODS_STATE = "halfday_periods"
)

const (
	FILTER_CLASSROOM_STATE = "filter_classroom"
	FILTER_TEACHER_STATE   = "filter_teacher"
	FILTER_SUBJECT_STATE   = "filter_subject"
)

const (
	GENERATE_START_DATE_STATE = "generate_start"
	GENERATE_END_DATE_STATE   = "generate_end"
)
