package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/internal/workers"
	"github.com/MKhiriev/webcrm-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) owns session transitions and the summary worker
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx  context.Context
	auth service.AuthService

	pages   map[string]tea.Model
	current tea.Model
	login   *LoginModel
	home    *HomeModel

	summaryWorker *workerSwitch
	workerSeq     uint64

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers pages and opens the sign-in page. pages must contain
// the login and home pages. worker may be nil.
func NewRootModel(ctx context.Context, auth service.AuthService, pages map[string]tea.Model, worker workers.Worker, buildInfo models.AppBuildInfo) RootModel {
	login, _ := pages[pageLogin].(*LoginModel)
	home, _ := pages[pageHome].(*HomeModel)

	return RootModel{
		ctx:           ctx,
		auth:          auth,
		pages:         pages,
		current:       pages[pageLogin],
		login:         login,
		home:          home,
		summaryWorker: &workerSwitch{worker: worker},
		buildInfo:     buildInfo,
	}
}

// Init shows the sign-in page and tries to restore a persisted session.
func (r RootModel) Init() tea.Cmd {
	ctx, auth := r.ctx, r.auth
	restore := func() tea.Msg {
		cred, err := auth.RestoreSession(ctx)
		return sessionRestoredMsg{cred: cred, err: err}
	}
	if r.current == nil {
		return restore
	}
	return tea.Batch(r.current.Init(), restore)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.current == r.pages[pageHome] {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	switch msg := msg.(type) {
	case sessionRestoredMsg:
		if msg.err == nil {
			return r.signedIn(msg.cred)
		}
		if !errors.Is(msg.err, service.ErrNotSignedIn) && r.login != nil {
			r.login.setNotice(userMessage(msg.err, app.MsgLoadError))
		}
		return r, nil

	case signedInMsg:
		return r.signedIn(msg.cred)

	case signedOutMsg:
		return r.toLogin("")

	case sessionExpiredMsg:
		if r.current == r.pages[pageLogin] {
			return r, nil
		}
		return r.toLogin(app.MsgSessionExpired)

	case summaryRefreshedMsg:
		var cmds []tea.Cmd
		if r.home != nil {
			_, cmd := r.home.Update(msg)
			cmds = append(cmds, cmd)
		}
		if r.current != nil && r.current != r.pages[pageHome] {
			updated, cmd := r.current.Update(msg)
			r.current = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage(models.AppName, "", "")
	}
	return r.current.View()
}

func (r RootModel) signedIn(cred models.Credential) (tea.Model, tea.Cmd) {
	r.showBuildInfo = false
	if r.home != nil {
		r.home.setCredential(cred)
	}
	r.current = r.pages[pageHome]

	var initCmd tea.Cmd
	if r.current != nil {
		initCmd = r.current.Init()
	}
	return r, tea.Batch(initCmd, r.switchWorker(true))
}

func (r RootModel) toLogin(notice string) (tea.Model, tea.Cmd) {
	r.showBuildInfo = false
	if r.login != nil {
		r.login.reset(notice)
	}
	r.current = r.pages[pageLogin]

	var initCmd tea.Cmd
	if r.current != nil {
		initCmd = r.current.Init()
	}
	return r, tea.Batch(initCmd, r.switchWorker(false))
}

// switchWorker returns a command that starts or stops the summary worker.
// Stop blocks until the worker goroutine has exited, so it must never run on
// the Update goroutine.
func (r *RootModel) switchWorker(run bool) tea.Cmd {
	r.workerSeq++
	seq, sw := r.workerSeq, r.summaryWorker
	return func() tea.Msg {
		sw.apply(seq, run)
		return nil
	}
}

// workerSwitch applies start/stop requests in the order they were issued,
// dropping any that arrive after a newer one has been applied.
type workerSwitch struct {
	mu      sync.Mutex
	worker  workers.Worker
	seq     uint64
	running bool
	closed  bool
}

func (s *workerSwitch) apply(seq uint64, run bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.worker == nil || s.closed || seq <= s.seq {
		return
	}
	s.seq = seq
	if run == s.running {
		return
	}
	if run {
		s.worker.Run()
	} else {
		s.worker.Stop()
	}
	s.running = run
}

// stop terminates the worker for good; later requests are ignored.
func (s *workerSwitch) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.worker != nil && s.running {
		s.worker.Stop()
		s.running = false
	}
}
