package handler

import (
	"sync"

	"wordreader/internal/domain"
	"wordreader/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	vocabService   *service.VocabularyService
	lookupService  *service.LookupService
	libraryService *service.LibraryService
	statsService   *service.StatsService
	logger         *zap.Logger
	maxUploadBytes int64

	// Chat sessions, one per user
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	vocabService *service.VocabularyService,
	lookupService *service.LookupService,
	libraryService *service.LibraryService,
	statsService *service.StatsService,
	maxUploadBytes int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		vocabService:   vocabService,
		lookupService:  lookupService,
		libraryService: libraryService,
		statsService:   statsService,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
		states:         make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/words", h.handleWords)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/lang", h.handleLanguage)
	h.bot.Handle("/gutenberg", h.handleGutenbergSearch)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnWords, h.handleWords)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnContinue, h.handleContinue)
	h.bot.Handle(&btnSave, h.handleSave)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns a copy of user's current session
func (h *Handler) GetState(userID int64) domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return domain.StateData{State: domain.StateIdle}
	}
	return *state
}

// UpdateState applies fn to user's session under the state lock
func (h *Handler) UpdateState(userID int64, fn func(s *domain.StateData)) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	state, exists := h.states[userID]
	if !exists {
		state = &domain.StateData{State: domain.StateIdle}
		h.states[userID] = state
	}
	fn(state)
}

// Inline keyboard buttons
var (
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📚 My words",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Progress",
	}
	btnContinue = tele.Btn{
		Unique: "continue",
		Text:   "📖 Continue reading",
	}
	btnSave = tele.Btn{
		Unique: "save",
		Text:   "➕ Save word",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup(reading bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	if reading {
		rows = append(rows, menu.Row(btnContinue))
	}
	rows = append(rows, menu.Row(btnWords, btnStats))
	menu.Inline(rows...)
	return menu
}
