package constants

import "time"

const DEFAULT_TIMEOUT = 90 * time.Second

const (
	START_COMMAND  = "/start"
	HELP_COMMAND   = "/help"
	CANCEL_COMMAND = "/cancel"

	CLASSROOMS_COMMAND = "/classrooms"
	PERIODS_COMMAND    = "/periods"
	SUBJECTS_COMMAND   = "/subjects"
	TEACHERS_COMMAND   = "/teachers"

	ABSENCES_COMMAND = "/absences"
	HALFDAY_COMMAND  = "/halfday"

	GRID_COMMAND         = "/grid"
	TEACHER_GRID_COMMAND = "/teachergrid"
	LOAD_COMMAND         = "/load"
	FILTER_COMMAND       = "/filter"

	GENERATE_COMMAND         = "/generate"
	GENERATE_BETWEEN_COMMAND = "/generatebetween"
	EXCEL_COMMAND            = "/excel"
	ARCHIVES_COMMAND         = "/archives"
	PUBLISH_COMMAND          = "/publish"
)

const (
	REFDATA_CALLBACKS = "ref"
	GRID_CALLBACKS    = "grid"
	ARCHIVE_CALLBACKS = "arch"
)
