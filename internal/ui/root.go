package ui

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/sort-visualizer/internal/config"
	"github.com/ytget/sort-visualizer/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      session.Controller
	settings     *config.Settings
	localization *Localization
	log          *zap.Logger

	// Intro card
	introCard   *fyne.Container
	promptLabel *widget.Label
	countEntry  *widget.Entry
	enterBtn    *widget.Button

	// Board card
	boardCard   *fyne.Container
	boardGrid   *fyne.Container
	boardScroll *container.Scroll
	sortBtn     *widget.Button
	resetBtn    *widget.Button
	statusLabel *widget.Label
	handles     []*HandleButton

	// positions highlighted by the latest swap shown on screen
	shownMarks []int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc session.Controller, log *zap.Logger) *RootUI {
	if log == nil {
		log = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage(), lang.SystemLocale().String())

	ui := &RootUI{
		window:       window,
		session:      svc,
		settings:     settings,
		localization: localization,
		log:          log,
	}

	svc.SetPace(settings.GetPace())
	svc.SetUpdateCallback(ui.onSessionEvent)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Intro card
	ui.promptLabel = widget.NewLabel(ui.localization.GetText(KeyPrompt))
	ui.promptLabel.Alignment = fyne.TextAlignCenter

	ui.countEntry = widget.NewEntry()
	ui.countEntry.SetPlaceHolder(ui.localization.GetText(KeyCountPlaceholder))
	if last := ui.settings.GetLastCount(); last > 0 {
		ui.countEntry.SetText(strconv.Itoa(last))
	}
	// Submit when user presses Enter in the count field
	ui.countEntry.OnSubmitted = func(string) {
		ui.onEnterClick()
	}

	ui.enterBtn = widget.NewButton(ui.localization.GetText(KeyEnter), ui.onEnterClick)
	ui.enterBtn.Importance = widget.SuccessImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	entryBox := container.NewGridWrap(fyne.NewSize(InputWidth, ui.countEntry.MinSize().Height), ui.countEntry)
	ui.introCard = container.NewBorder(
		container.NewHBox(settingsBtn),
		nil, nil, nil,
		container.NewCenter(container.NewVBox(
			ui.promptLabel,
			container.NewCenter(entryBox),
			container.NewCenter(ui.enterBtn),
		)),
	)

	// Board card
	ui.boardGrid = container.NewGridWithRows(MaxHandlesInColumn)
	ui.boardScroll = container.NewHScroll(ui.boardGrid)
	ui.boardScroll.SetMinSize(fyne.NewSize(
		MaxVisibleColumns*(HandleWidth+HandleGap),
		MaxHandlesInColumn*(HandleHeight+HandleGap),
	))

	ui.sortBtn = widget.NewButton(IconSort+" "+ui.localization.GetText(KeySort), ui.onSortClick)
	ui.sortBtn.Importance = widget.SuccessImportance
	ui.resetBtn = widget.NewButton(IconReset+" "+ui.localization.GetText(KeyReset), ui.onResetClick)
	ui.resetBtn.Importance = widget.SuccessImportance

	controls := container.NewGridWrap(fyne.NewSize(ControlsWidth, ui.sortBtn.MinSize().Height),
		ui.sortBtn, ui.resetBtn)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.boardCard = container.NewBorder(
		nil,
		ui.statusLabel,
		nil,
		container.NewVBox(controls),
		container.NewPadded(ui.boardScroll),
	)
	ui.boardCard.Hide()

	ui.window.SetContent(container.NewStack(ui.introCard, ui.boardCard))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode, lang.SystemLocale().String())
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.promptLabel.SetText(ui.localization.GetText(KeyPrompt))
	ui.countEntry.SetPlaceHolder(ui.localization.GetText(KeyCountPlaceholder))
	ui.enterBtn.SetText(ui.localization.GetText(KeyEnter))
	ui.sortBtn.SetText(IconSort + " " + ui.localization.GetText(KeySort))
	ui.resetBtn.SetText(IconReset + " " + ui.localization.GetText(KeyReset))
}

// onEnterClick submits the count typed in the intro card
func (ui *RootUI) onEnterClick() {
	count, err := ui.session.SubmitCount(ui.countEntry.Text)
	if err != nil {
		ui.showError(err)
		return
	}

	ui.settings.SetLastCount(count)
	ui.showBoard()
}

// onSortClick starts a sort and keeps the trigger disabled until it ends
func (ui *RootUI) onSortClick() {
	task, _, err := ui.session.RequestSort()
	if err != nil {
		ui.showError(err)
		return
	}

	ui.sortBtn.Disable()
	ui.resetBtn.Disable()
	ui.statusLabel.SetText(task.Summary())
}

// onResetClick returns to the intro card with the previous count prefilled
func (ui *RootUI) onResetClick() {
	if err := ui.session.RequestReset(); err != nil {
		ui.showError(err)
		return
	}
	ui.showIntro()
}

// onSelect handles a tap on a number handle
func (ui *RootUI) onSelect(position int) {
	if err := ui.session.SelectElement(position); err != nil {
		ui.showError(err)
		return
	}
	ui.showBoard()
}

// onSessionEvent receives session updates; swaps and completion arrive from
// the sort goroutine and are applied on the UI thread
func (ui *RootUI) onSessionEvent(e session.Event) {
	switch e.Kind {
	case session.EventSwapped:
		swap := e.Swap
		fyne.Do(func() {
			ui.refreshSwap(swap.I, swap.J)
		})
	case session.EventSortFinished:
		summary := ""
		if e.Task != nil {
			summary = ui.localization.GetText(KeySortCompleted) + ": " + e.Task.Summary()
		}
		fyne.Do(func() {
			ui.syncBoard()
			ui.statusLabel.SetText(summary)
			ui.sortBtn.Enable()
			ui.resetBtn.Enable()
		})
	}
}

// showBoard rebuilds the handle buttons from the current board
func (ui *RootUI) showBoard() {
	board := ui.session.Board()
	if board == nil {
		ui.showIntro()
		return
	}

	snapshot := board.Snapshot()
	ui.handles = make([]*HandleButton, len(snapshot))
	objects := make([]fyne.CanvasObject, len(snapshot))
	for i, h := range snapshot {
		ui.handles[i] = NewHandleButton(i, h, ui.onSelect)
		objects[i] = ui.handles[i]
	}
	ui.shownMarks = nil

	ui.boardGrid.Objects = objects
	ui.boardGrid.Refresh()
	ui.boardScroll.Offset = fyne.NewPos(0, 0)
	ui.boardScroll.Refresh()
	ui.statusLabel.SetText("")

	ui.log.Debug("board shown", zap.Int("handles", len(snapshot)))

	ui.introCard.Hide()
	ui.boardCard.Show()
}

// showIntro hides the board and prefills the last accepted count
func (ui *RootUI) showIntro() {
	if count, ok := ui.session.Count(); ok {
		ui.countEntry.SetText(strconv.Itoa(count))
	}
	ui.handles = nil
	ui.shownMarks = nil
	ui.boardGrid.Objects = nil
	ui.boardGrid.Refresh()

	ui.boardCard.Hide()
	ui.introCard.Show()
}

// refreshSwap updates the two swapped handles and clears the previous marks
func (ui *RootUI) refreshSwap(i, j int) {
	board := ui.session.Board()
	if board == nil {
		return
	}

	for _, p := range append(ui.shownMarks, i, j) {
		if p < 0 || p >= len(ui.handles) {
			continue
		}
		if h, ok := board.Handle(p); ok {
			ui.handles[p].Update(h)
		}
	}
	ui.shownMarks = []int{i, j}
}

// syncBoard brings every handle button in line with the board
func (ui *RootUI) syncBoard() {
	board := ui.session.Board()
	if board == nil {
		return
	}

	for i, h := range board.Snapshot() {
		if i < len(ui.handles) {
			ui.handles[i].Update(h)
		}
	}
	ui.shownMarks = nil
}

// showError maps session errors to localized messages
func (ui *RootUI) showError(err error) {
	var message string
	switch {
	case errors.Is(err, session.ErrParse):
		message = ui.localization.GetText(KeyInvalidNumber)
	case errors.Is(err, session.ErrRange):
		message = ui.localization.GetText(KeyOutOfRange)
	case errors.Is(err, session.ErrSelectionRange):
		message = ui.localization.GetText(KeySelectLowValue)
	case errors.Is(err, session.ErrSortInProgress):
		message = ui.localization.GetText(KeySortInProgress)
	default:
		message = err.Error()
	}

	ui.log.Debug("request rejected", zap.Error(err))
	dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), message, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into the session and the texts
func (ui *RootUI) applySettings() {
	ui.session.SetPace(ui.settings.GetPace())
	ui.localization.SetLanguage(ui.settings.GetLanguage(), lang.SystemLocale().String())
	ui.refreshUITexts()
	ui.createMenu()
}
