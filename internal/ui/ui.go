// Package ui is the terminal chat widget: a tview conversation view and
// input area wired to the conversation client. The input area is disabled
// while a request is in flight; the status bar doubles as the pending
// indicator.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bz888/agentchat/internal/client"
	"github.com/bz888/agentchat/internal/config"
	"github.com/bz888/agentchat/internal/logger"
	"github.com/bz888/agentchat/internal/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var app *tview.Application

var (
	debugConsole *tview.TextView
	textView     *tview.TextView
	textArea     *tview.TextArea
	statusBar    *tview.TextView
	localLogger  *logger.Logger
	convClient   *client.Client
)

func Init() {
	app = tview.NewApplication()
	app.EnablePaste(true)
	app.EnableMouse(true)

	debugConsole = initDebugConsole()

	textView = initChatViewer()
	textArea = initChatInput()
	statusBar = initStatusBar()
}

func initChatViewer() *tview.TextView {
	textView := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetTitle("Conversation").SetBorder(true)
	textView.SetScrollable(true)
	textView.ScrollToEnd()
	return textView
}

func initChatInput() *tview.TextArea {
	textArea := tview.NewTextArea()
	textArea.SetTitle("Question").SetBorder(true)
	return textArea
}

func initStatusBar() *tview.TextView {
	bar := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true)
	return bar
}

func initDebugConsole() *tview.TextView {
	console := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	console.SetTitle("Debugger").SetBorder(true)
	console.ScrollToEnd()
	return console
}

// transcriptView feeds formatted messages into the conversation view.
type transcriptView struct {
	view *tview.TextView
}

func (t *transcriptView) Append(markup string) {
	fmt.Fprintf(t.view, "%s\n\n", markup)
}

// inputArea projects the client's state onto the text area. The client's
// own pending flag is what rejects re-entry; this only mirrors it.
type inputArea struct{}

func (inputArea) Clear() {
	app.QueueUpdateDraw(func() {
		textArea.SetText("", true)
	})
}

func (inputArea) SetDisabled(disabled bool) {
	app.QueueUpdateDraw(func() {
		textArea.SetDisabled(disabled)
	})
}

func (inputArea) Focus() {
	app.QueueUpdateDraw(func() {
		app.SetFocus(textArea)
	})
}

// pendingBar shows the thinking marker in the status bar while a request
// is outstanding.
type pendingBar struct{}

func (pendingBar) Show() {
	app.QueueUpdateDraw(func() {
		statusBar.SetText("[gray]🤖 thinking…[-]")
	})
}

func (pendingBar) Hide() {
	app.QueueUpdateDraw(func() {
		statusBar.SetText("")
	})
}

// Run wires the widget to the backend and blocks until the app exits.
func Run(cfg *config.Config) error {
	localLogger = logger.NewLogger("views")

	renderer := render.New(render.TViewMarkup{}, &transcriptView{view: textView})
	convClient = client.New(cfg.BackendURL, renderer, inputArea{}, pendingBar{})

	// Advisory connectivity check; the result only goes to the debug log.
	go func() {
		if err := convClient.Health(context.Background()); err != nil {
			localLogger.Warn("Backend health check failed: ", err)
			return
		}
		localLogger.Info("Backend healthy")
	}()

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			app.SetFocus(textArea)
		}
		return event
	})

	subFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(textView, 0, 1, false).
		AddItem(statusBar, 1, 0, false).
		AddItem(textArea, 8, 2, true)
	mainFlex := tview.NewFlex().
		AddItem(subFlex, 0, 2, false)

	if config.Dev {
		mainFlex.AddItem(debugConsole, 0, 1, true)
	}

	setInputCapture(mainFlex)

	return app.SetRoot(mainFlex, true).SetFocus(textArea).Run()
}

func setInputCapture(mainFlex *tview.Flex) {
	textArea.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyESC:
			if textView.GetText(false) != "" {
				app.SetFocus(textView)
			}
		case tcell.KeyEnter:
			content := textArea.GetText()
			if strings.TrimSpace(content) == "" {
				return nil
			}

			switch strings.TrimSpace(content) {
			case "/help":
				textArea.SetText("", true)
				listHelp()
				return event
			case "/bye":
				quitApp()
				return event
			case "/debug":
				textArea.SetText("", true)
				toggleDebugConsole(mainFlex)
				return event
			case "/agents":
				textArea.SetText("", true)
				go listAgents()
				return event
			}

			// The client owns clearing, disabling and re-enabling.
			go convClient.Submit(context.Background(), content)
			return nil
		}
		return event
	})
}

func listAgents() {
	agents, err := convClient.Agents(context.Background())
	if err != nil {
		localLogger.Error("Failed to list agents: ", err)
		fmt.Fprintf(textView, "Could not fetch the agent list from the backend\n\n")
		return
	}

	fmt.Fprintf(textView, "[green::]Available agents:[-]\n")
	for _, agent := range agents {
		fmt.Fprintf(textView, "- %s %s: %s\n", agent.Icon, agent.Name, agent.Description)
	}
	fmt.Fprintf(textView, "\n")
}

func toggleDebugConsole(mainFlex *tview.Flex) {
	go func() {
		if !config.Dev {
			app.QueueUpdateDraw(func() {
				mainFlex.AddItem(debugConsole, 0, 1, true)
				fmt.Fprintf(textView, "\nDebug console enabled\n")
			})
		} else {
			app.QueueUpdateDraw(func() {
				mainFlex.RemoveItem(debugConsole)
				fmt.Fprintf(textView, "\nDebug console disabled\n")
			})
		}
		config.Dev = !config.Dev
	}()
}

func quitApp() {
	fmt.Fprintf(textView, "Bye bye\n")

	localLogger.Close()
	app.Stop()
	os.Exit(0)
}

func listHelp() {
	fmt.Fprintf(textView, "[green::]Here are some commands you can use:[-]\n")
	fmt.Fprintf(textView, "- /help: Display this help message\n")
	fmt.Fprintf(textView, "- /bye: Exit the application\n")
	fmt.Fprintf(textView, "- /debug: Toggle the debug console\n")
	fmt.Fprintf(textView, "- /agents: List the backend's agent personas\n\n")
}

func GetDebugConsole() (*tview.TextView, error) {
	if debugConsole == nil {
		return nil, errors.New("debug console not initialized")
	}
	return debugConsole, nil
}
