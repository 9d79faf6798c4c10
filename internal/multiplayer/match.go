package multiplayer

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// HostedGame is what a game must implement to run inside a HostedMatch.
type HostedGame interface {
	// Reset initializes the game state.
	Reset(cfg core.RuntimeConfig)

	// StepMulti advances the game by one tick using input from both seats.
	StepMulti(input core.MultiInputFrame) core.StepResult

	// Snapshot returns the current game state for transmission.
	Snapshot() GameSnapshot

	// IsGameOver returns true once the match outcome is decided.
	IsGameOver() bool

	// Winner returns the winning seat, or 0 when there is none.
	Winner() PlayerID

	// State returns score, level and lives.
	State() core.GameState
}

// MatchResultSaver persists match outcomes without the multiplayer package
// depending on storage.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchResultData contains match result data for persistence.
type MatchResultData struct {
	MatchID      string
	GameID       string
	Winner       string // "pacman", "ghost" or empty
	PacScore     int
	Level        int
	EndReason    string
	DurationSecs int
}

// MatchResult contains the outcome of a finished match.
type MatchResult struct {
	MatchID MatchID
	Reason  MatchEndReason
	Winner  PlayerID
	Score   int
	Level   int
	Ticks   uint64
}

// MatchConfig configures a hosted match.
type MatchConfig struct {
	ID       MatchID // generated when empty
	GameID   string
	Mode     MatchMode
	Runtime  core.RuntimeConfig
	Saver    MatchResultSaver // optional; only versus results are saved
	OnError  func(error)      // optional; receives saver failures
	TickRate int              // defaults to Runtime.TickRate
}

// HostedMatch is an authoritative game loop serving one session.
type HostedMatch struct {
	id      MatchID
	cfg     MatchConfig
	game    HostedGame
	session SessionHandle

	inputMu   sync.Mutex
	pending   core.MultiInputFrame
	inputChan chan playerInput

	tick     uint64
	started  time.Time
	done     chan struct{}
	doneOnce sync.Once
}

type playerInput struct {
	player PlayerID
	input  core.InputFrame
}

// NewHostedMatch creates a match around game. The game is reset with
// cfg.Runtime before the first tick.
func NewHostedMatch(cfg MatchConfig, game HostedGame, session SessionHandle) *HostedMatch {
	if cfg.ID == "" {
		cfg.ID = NewMatchID()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = cfg.Runtime.TickRate
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = cfg.TickRate
	}

	pending := core.NewMultiInputFrame()
	pending.SetPlayer(Player1, core.NewInputFrame())
	pending.SetPlayer(Player2, core.NewInputFrame())

	return &HostedMatch{
		id:        cfg.ID,
		cfg:       cfg,
		game:      game,
		session:   session,
		pending:   pending,
		inputChan: make(chan playerInput, 64),
		done:      make(chan struct{}),
	}
}

// ID returns the match identifier.
func (m *HostedMatch) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *HostedMatch) Mode() MatchMode {
	return m.cfg.Mode
}

// SendInput queues input for a seat. Non-blocking; input is dropped when
// the queue is full.
func (m *HostedMatch) SendInput(player PlayerID, input core.InputFrame) {
	select {
	case m.inputChan <- playerInput{player: player, input: input.Clone()}:
	default:
	}
}

// Run drives the match until the game ends, the session goes away or Stop
// is called. onComplete, when set, receives the result before Run returns.
func (m *HostedMatch) Run(onComplete func(MatchResult)) {
	defer m.Stop()

	m.game.Reset(m.cfg.Runtime)
	m.started = time.Now()

	ticker := time.NewTicker(time.Second / time.Duration(m.cfg.TickRate))
	defer ticker.Stop()

	var result MatchResult
	for {
		select {
		case <-ticker.C:
			var over bool
			result, over = m.runTick()
			if !over {
				continue
			}
		case <-m.session.Done():
			result = m.result(MatchEndReasonDisconnect, 0)
		case <-m.done:
			result = m.result(MatchEndReasonCancelled, 0)
		}
		break
	}

	m.finish(result)
	if onComplete != nil {
		onComplete(result)
	}
}

func (m *HostedMatch) runTick() (MatchResult, bool) {
	m.drainInputs()

	m.inputMu.Lock()
	frame := core.NewMultiInputFrame()
	for id, in := range m.pending.ByPlayer {
		frame.SetPlayer(id, in.Clone())
	}
	m.pending.Clear()
	m.inputMu.Unlock()

	m.game.StepMulti(frame)
	m.tick++

	m.session.Send(SnapshotEvent{
		MatchID:  m.id,
		Tick:     m.tick,
		Snapshot: m.game.Snapshot(),
	})

	if m.game.IsGameOver() {
		return m.result(MatchEndReasonCompleted, m.game.Winner()), true
	}
	return MatchResult{}, false
}

func (m *HostedMatch) drainInputs() {
	m.inputMu.Lock()
	defer m.inputMu.Unlock()

	for {
		select {
		case pi := <-m.inputChan:
			frame := m.pending.Player(pi.player)
			for action, pressed := range pi.input.Actions {
				if pressed {
					frame.Set(action)
				}
			}
			m.pending.SetPlayer(pi.player, frame)
		default:
			return
		}
	}
}

func (m *HostedMatch) result(reason MatchEndReason, winner PlayerID) MatchResult {
	st := m.game.State()
	return MatchResult{
		MatchID: m.id,
		Reason:  reason,
		Winner:  winner,
		Score:   st.Score,
		Level:   st.Level,
		Ticks:   m.tick,
	}
}

// finish notifies the session and saves versus outcomes.
func (m *HostedMatch) finish(r MatchResult) {
	m.session.Send(MatchEndedEvent{
		MatchID: r.MatchID,
		Reason:  r.Reason,
		Winner:  r.Winner,
		Score:   r.Score,
		Level:   r.Level,
	})

	if m.cfg.Saver == nil || m.cfg.Mode != MatchModeLocalVersus || r.Reason != MatchEndReasonCompleted {
		return
	}
	err := m.cfg.Saver.SaveMatchResult(MatchResultData{
		MatchID:      string(r.MatchID),
		GameID:       m.cfg.GameID,
		Winner:       SideName(r.Winner),
		PacScore:     r.Score,
		Level:        r.Level,
		EndReason:    r.Reason.String(),
		DurationSecs: int(time.Since(m.started).Seconds()),
	})
	if err != nil && m.cfg.OnError != nil {
		m.cfg.OnError(err)
	}
}

// Stop ends the match. Safe to call multiple times.
func (m *HostedMatch) Stop() {
	m.doneOnce.Do(func() {
		close(m.done)
	})
}

// Done closes when the match loop has stopped.
func (m *HostedMatch) Done() <-chan struct{} {
	return m.done
}

// SideName names the role a seat plays in versus Pac-Man.
func SideName(p PlayerID) string {
	switch p {
	case Player1:
		return "pacman"
	case Player2:
		return "ghost"
	default:
		return ""
	}
}
