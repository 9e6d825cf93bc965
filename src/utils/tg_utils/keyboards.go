package tgutils

import (
	"slices"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const CHUNK_SIZE = 3

// CreateChoiceKeyboard lays labelled options out in rows of CHUNK_SIZE,
// each button carrying callbackFor(label) as its data.
func CreateChoiceKeyboard(labels []string, callbackFor func(label string) string) *tgbotapi.InlineKeyboardMarkup {
	markup := [][]tgbotapi.InlineKeyboardButton{}
	for chunk := range slices.Chunk(labels, CHUNK_SIZE) {
		row := []tgbotapi.InlineKeyboardButton{}
		for _, label := range chunk {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, callbackFor(label)))
		}
		markup = append(markup, row)
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(markup...)
	return &keyboard
}

// CreateReplyKeyboard offers plain text answers, one row of buttons.
func CreateReplyKeyboard(options ...string) tgbotapi.ReplyKeyboardMarkup {
	row := []tgbotapi.KeyboardButton{}
	for _, option := range options {
		row = append(row, tgbotapi.KeyboardButton{Text: option})
	}
	keyboard := tgbotapi.NewOneTimeReplyKeyboard(row)
	return keyboard
}
