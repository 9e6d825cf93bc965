package ioc

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/mgowdara/school_timetable_bot/src/excel"
	google_docs_auth "github.com/mgowdara/school_timetable_bot/src/google_docs/auth"
	driveapi "github.com/mgowdara/school_timetable_bot/src/google_docs/drive_api"
	sheetsapi "github.com/mgowdara/school_timetable_bot/src/google_docs/sheets_api"
	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/stores"
	"github.com/mgowdara/school_timetable_bot/src/telegram/bot"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/generation"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/state_machine/views"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	entities "github.com/mgowdara/school_timetable_bot/src/timetable_api/entities"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
)

var useApiClient = provider(
	func() *timetable_api.Client {
		cfg := useConfig()
		return timetable_api.NewClient(cfg.ApiBaseUrl, cfg.RequestTimeout)
	},
)

var useClassroomsApi = provider(
	func() *timetable_api.ResourceService[entities.Classroom] {
		return timetable_api.NewResourceService[entities.Classroom](useApiClient(), "/api/classrooms")
	},
)
var usePeriodsApi = provider(
	func() *timetable_api.ResourceService[entities.Period] {
		return timetable_api.NewResourceService[entities.Period](useApiClient(), "/api/periods")
	},
)
var useSubjectsApi = provider(
	func() *timetable_api.ResourceService[entities.Subject] {
		return timetable_api.NewResourceService[entities.Subject](useApiClient(), "/api/subjects")
	},
)
var useTeachersApi = provider(
	func() *timetable_api.ResourceService[entities.Teacher] {
		return timetable_api.NewResourceService[entities.Teacher](useApiClient(), "/api/teachers")
	},
)

var useAbsencesApi = provider(
	func() *timetable_api.AbsencesService {
		return timetable_api.NewAbsencesService(useApiClient())
	},
)

var useTimetableService = provider(
	func() *timetable_api.TimetableService {
		return timetable_api.NewTimetableService(useApiClient())
	},
)

var useValidator = provider(
	func() *validator.Validate {
		return validator.New()
	},
)

var usePendingConfirmations = provider(
	func() *tgutils.PendingConfirmations {
		return tgutils.NewPendingConfirmations()
	},
)

var useStoresRegistry = provider(
	func() *stores.Registry {
		tgbot := useTgBot()
		pending := usePendingConfirmations()
		validate := useValidator()
		return stores.NewRegistry(func(chatId int64) *stores.ChatStores {
			notify := tgutils.NewChatNotifier(tgbot, chatId)
			confirm := tgutils.NewChatConfirmer(tgbot, chatId, pending)
			return &stores.ChatStores{
				Classrooms: stores.NewStore(useClassroomsApi(), validate, notify, confirm, "classroom"),
				Periods:    stores.NewStore(usePeriodsApi(), validate, notify, confirm, "period"),
				Subjects:   stores.NewStore(useSubjectsApi(), validate, notify, confirm, "subject"),
				Teachers:   stores.NewStore(useTeachersApi(), validate, notify, confirm, "teacher"),
				Absences:   stores.NewAbsenceStore(useAbsencesApi(), notify),
			}
		})
	},
)

var useGoogleClient = provider(
	func() *http.Client {
		client, err := google_docs_auth.GetClient()
		if err != nil {
			logging.FatalLog(err.Error())
		}
		return client
	},
)

var useSheetsApi = provider(
	func() *sheets.Service {
		srv, err := sheets.NewService(context.Background(), option.WithHTTPClient(useGoogleClient()))
		if err != nil {
			logging.FatalLog(err.Error())
		}
		return srv
	},
)

var useDriveApi = provider(
	func() *drive.Service {
		srv, err := drive.NewService(context.Background(), option.WithHTTPClient(useGoogleClient()))
		if err != nil {
			logging.FatalLog(err.Error())
		}
		return srv
	},
)

var UseDriveApiService = provider(
	func() *driveapi.DriveApiService {
		return driveapi.NewDriveApiService(useDriveApi())
	},
)

var UseSheetsApiService = provider(
	func() *sheetsapi.SheetsApiService {
		return sheetsapi.NewSheetsApiService(useSheetsApi(), UseDriveApiService())
	},
)

var useExcelExporter = provider(
	func() *excel.Exporter {
		return excel.NewExporter()
	},
)

var useViewsService = provider(
	func() *views.Service {
		return views.NewService(
			useTgBot(), useTimetableService(),
			useClassroomsApi(), usePeriodsApi(), useTeachersApi(),
		)
	},
)

var useGenerationService = provider(
	func() *generation.Service {
		return generation.NewService(
			useTgBot(), useTimetableService(), useViewsService(),
			useExcelExporter(), UseSheetsApiService(),
		)
	},
)

var UseMessagesService = provider(
	func() bot.MessagesService {
		return update_handlers.NewMessagesService(
			useStateMachine(), useHandlersCache(), useTgBot(),
		)
	},
)

var UseCallbacksService = provider(
	func() bot.CallbacksService {
		return update_handlers.NewCallbacksService(
			useHandlersCache(), useCallbackRouter(),
		)
	},
)
