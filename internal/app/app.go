package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"formscale/internal/host"
	"formscale/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
)

type Config struct {
	// FormPath is a YAML form definition. Empty means the built-in demo form.
	FormPath string
	Logger   *slog.Logger
}

type App struct {
	host   *host.Host
	logger *slog.Logger
	canvas *ebiten.Image

	formPath  string
	status    string
	showDebug bool
}

func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h, err := host.Load(cfg.FormPath, logger)
	if err != nil {
		return nil, err
	}
	return &App{
		host:     h,
		logger:   logger,
		formPath: cfg.FormPath,
		status:   "Resize the window to rescale the form",
	}, nil
}

func (a *App) Run() error {
	win := a.host.Window()
	w, h := win.Size()
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(host.MinWindowW, host.MinWindowH, -1, -1)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.showDebug = !a.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showGeometryInfo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(a.host.Dump()); err != nil {
			a.setError("Copy failed", err)
		} else {
			a.status = "Layout copied to clipboard"
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := a.openFormDialog(); err != nil && !errors.Is(err, dialog.ErrCancelled) {
			a.setError("Open failed", err)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if tabs, i, ok := ui.TabAt(a.host.Window(), image.Pt(x, y)); ok {
			tabs.Select(i)
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	fb, labels := a.host.Draw()
	if a.canvas == nil || a.canvas.Bounds().Dx() != fb.W || a.canvas.Bounds().Dy() != fb.H {
		a.canvas = ebiten.NewImage(fb.W, fb.H)
	}
	a.canvas.WritePixels(fb.Pixels)
	screen.DrawImage(a.canvas, nil)

	fonts := a.host.Fonts()
	for _, l := range labels {
		a.drawLabel(screen, fonts, l)
	}

	win := a.host.Window()
	w, h := win.Size()
	eng := a.host.Engine()
	ws, hs := eng.Factors(w, h)
	size := eng.FontSize(w)
	theme := a.host.Theme()
	status := fmt.Sprintf("[ %s ] [ %dx%d ] [ scale %.2f x %.2f ] [ font %dpt ] [ %s ]", win.Name(), w, h, ws, hs, size, a.status)
	text.Draw(screen, status, fonts.Face(9), 8, h-theme.StatusHeight/2+4, theme.Text)

	if a.showDebug {
		snap := eng.Snapshot()
		root := eng.RootGeometry()
		source := a.formPath
		if source == "" {
			source = "(demo)"
		}
		msg := fmt.Sprintf("form %s\ncaptured %dx%d\ngroups %d elements %d\ndigest %s\nrescales %d",
			filepath.Base(source), root.Width, root.Height, snap.Len(), snap.Count(), snap.Digest()[:16], a.host.Rescales())
		ebitenutil.DebugPrintAt(screen, msg, w-220, 30)
	}
}

func (a *App) drawLabel(screen *ebiten.Image, fonts *ui.FontBank, l ui.Label) {
	clip := l.Clip.Intersect(l.Rect)
	if clip.Empty() {
		return
	}
	dst, ok := screen.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}
	face := fonts.Face(l.Size)
	descent := face.Metrics().Descent.Round()
	x := l.Rect.Min.X + 4
	if l.Align == ui.AlignCenter {
		x = l.Rect.Min.X + (l.Rect.Dx()-fonts.Measure(l.Size, l.Text))/2
	}
	baseline := l.Rect.Min.Y + (l.Rect.Dy()+fonts.Height(l.Size))/2 - descent
	text.Draw(dst, l.Text, face, x, baseline, l.Color)
}

// Layout forwards every window size change to the host, which rescales the
// form once per distinct size.
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < host.MinWindowW {
		outsideWidth = host.MinWindowW
	}
	if outsideHeight < host.MinWindowH {
		outsideHeight = host.MinWindowH
	}
	if _, err := a.host.Resize(outsideWidth, outsideHeight); err != nil {
		a.setError("Rescale failed", err)
	}
	return outsideWidth, outsideHeight
}

func (a *App) setError(prefix string, err error) {
	a.status = prefix + ": " + err.Error()
	a.logger.Error(prefix, "err", err)
}

func (a *App) openFormDialog() error {
	path, err := dialog.File().Filter("Form definitions", "yaml", "yml").Load()
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New("no file selected")
	}
	path = filepath.Clean(path)
	h, err := host.Load(path, a.logger)
	if err != nil {
		return err
	}
	a.host = h
	a.formPath = path
	w, ht := h.Window().Size()
	ebiten.SetWindowTitle(h.Window().Title)
	ebiten.SetWindowSize(w, ht)
	a.status = "Opened " + filepath.Base(path)
	return nil
}

func (a *App) showGeometryInfo() {
	eng := a.host.Engine()
	root := eng.RootGeometry()
	w, h := a.host.Window().Size()
	ws, hs := eng.Factors(w, h)
	dialog.Message("Form %s\nCaptured: %dx%d\nCurrent: %dx%d\nScale: %.3f x %.3f\nFont: %dpt\nElements: %d",
		root.Name, root.Width, root.Height, w, h, ws, hs, eng.FontSize(w), eng.Snapshot().Count()).
		Title("Layout").
		Info()
}
