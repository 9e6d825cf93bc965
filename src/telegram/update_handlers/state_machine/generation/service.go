package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/mgowdara/school_timetable_bot/src/logging"
	"github.com/mgowdara/school_timetable_bot/src/schedule"
	"github.com/mgowdara/school_timetable_bot/src/telegram/update_handlers/constants"
	"github.com/mgowdara/school_timetable_bot/src/timetable_api"
	datetime "github.com/mgowdara/school_timetable_bot/src/utils/date_time"
	tgutils "github.com/mgowdara/school_timetable_bot/src/utils/tg_utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WorkbookExporter builds an xlsx workbook out of projected weekly grids.
type WorkbookExporter interface {
	BuildWorkbook(grids []schedule.Grid) ([]byte, error)
}

// GridsPublisher pushes grids to an external surface and returns its URL.
type GridsPublisher interface {
	PublishAll(ctx context.Context, grids []schedule.Grid) (string, error)
}

type GridSource interface {
	AllGrids(ctx context.Context) ([]schedule.Grid, error)
}

// Service runs the write-side timetable operations: generation, exports
// and publishing. Failures are reported to the requesting chat directly.
type Service struct {
	bot       *tgutils.Bot
	timetable *timetable_api.TimetableService
	grids     GridSource
	exporter  WorkbookExporter
	publisher GridsPublisher
}

func NewService(bot *tgutils.Bot, timetable *timetable_api.TimetableService, grids GridSource, exporter WorkbookExporter, publisher GridsPublisher) *Service {
	return &Service{bot: bot, timetable: timetable, grids: grids, exporter: exporter, publisher: publisher}
}

func (srv *Service) report(ctx context.Context, chatId int64, text string) error {
	if _, err := srv.bot.SendCtx(ctx, tgbotapi.NewMessage(chatId, text)); err != nil {
		return fmt.Errorf("failed to report to chat %d: %w", chatId, err)
	}
	return nil
}

func (srv *Service) Generate(ctx context.Context, chatId int64) error {
	status, err := srv.timetable.Generate(ctx)
	if err != nil {
		logging.Error("failed to generate timetable", "err", err.Error())
		return srv.report(ctx, chatId, fmt.Sprintf("❌ Generation failed: %s", err))
	}
	if status == "" {
		status = "Timetable generated"
	}
	return srv.report(ctx, chatId, "✅ "+status)
}

func (srv *Service) GenerateBetween(ctx context.Context, chatId int64, start, end datetime.DateOnly) error {
	status, err := srv.timetable.GenerateBetween(ctx, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		logging.Error("failed to generate timetable for range", "err", err.Error())
		return srv.report(ctx, chatId, fmt.Sprintf("❌ Generation failed: %s", err))
	}
	if status == "" {
		status = fmt.Sprintf("Timetable generated for %s – %s", start.Display(), end.Display())
	}
	return srv.report(ctx, chatId, "✅ "+status)
}

// SendExcel prefers the server's export and falls back to a locally built
// workbook when the download fails.
func (srv *Service) SendExcel(ctx context.Context, chatId int64) error {
	name, data, err := srv.timetable.DownloadLatestExcel(ctx)
	if err != nil {
		logging.Warn("server excel export unavailable, building locally", "err", err.Error())
		grids, gridsErr := srv.grids.AllGrids(ctx)
		if gridsErr != nil {
			logging.Error(gridsErr.Error(), "chat", chatId)
			return srv.report(ctx, chatId, "❌ Could not fetch the timetable for an export")
		}
		data, err = srv.exporter.BuildWorkbook(grids)
		if err != nil {
			logging.Error(err.Error(), "chat", chatId)
			return srv.report(ctx, chatId, "❌ Could not build the workbook")
		}
		name = timetable_api.DefaultExcelName
		if reportErr := srv.report(ctx, chatId, "Server export unavailable, sending a locally built workbook"); reportErr != nil {
			return reportErr
		}
	}
	return srv.sendDocument(ctx, chatId, name, data)
}

func (srv *Service) SendArchives(ctx context.Context, chatId int64) error {
	names, err := srv.timetable.Archives(ctx)
	if err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return srv.report(ctx, chatId, "❌ Could not list archived exports")
	}
	if len(names) == 0 {
		return srv.report(ctx, chatId, "No archived exports yet")
	}
	msg := tgbotapi.NewMessage(chatId, "Archived exports:")
	msg.ReplyMarkup = tgutils.CreateChoiceKeyboard(names, createArchiveCallback)
	if _, err = srv.bot.SendCtx(ctx, msg); err != nil {
		return fmt.Errorf("failed to send archive list to chat %d: %w", chatId, err)
	}
	return nil
}

func (srv *Service) SendArchive(ctx context.Context, chatId int64, name string) error {
	data, err := srv.timetable.DownloadArchive(ctx, name)
	if err != nil {
		logging.Error(err.Error(), "chat", chatId, "archive", name)
		return srv.report(ctx, chatId, fmt.Sprintf("❌ Could not download %s", name))
	}
	return srv.sendDocument(ctx, chatId, name, data)
}

func (srv *Service) Publish(ctx context.Context, chatId int64) error {
	grids, err := srv.grids.AllGrids(ctx)
	if err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return srv.report(ctx, chatId, "❌ Could not fetch the timetable for publishing")
	}
	url, err := srv.publisher.PublishAll(ctx, grids)
	if err != nil {
		logging.Error(err.Error(), "chat", chatId)
		return srv.report(ctx, chatId, fmt.Sprintf("❌ Publishing failed: %s", err))
	}
	return srv.report(ctx, chatId, "✅ Published: "+url)
}

func (srv *Service) sendDocument(ctx context.Context, chatId int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatId, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := srv.bot.SendCtx(ctx, doc); err != nil {
		return fmt.Errorf("failed to send document %s to chat %d: %w", name, chatId, err)
	}
	return nil
}

func createArchiveCallback(name string) string {
	return constants.ARCHIVE_CALLBACKS + "|" + name
}
