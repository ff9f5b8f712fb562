package berzerk

import (
	"math/rand"

	"github.com/vovakirdan/tui-berzerk/internal/config"
	"github.com/vovakirdan/tui-berzerk/internal/cue"
)

// Status is the session state machine. GameOver and Won are terminal until
// a hard reset.
type Status int

const (
	Running Status = iota
	GameOver
	Won
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Session is the per-run state owned by the engine.
type Session struct {
	Score    int
	Level    int
	Status   Status
	NewLevel bool
	Tick     uint64
}

// Engine runs the simulation. It is not safe for concurrent use; the
// frontend calls input methods and Tick from a single goroutine.
type Engine struct {
	cfg     config.BerzerkConfig
	arena   Arena
	rng     *rand.Rand
	trigger cue.Trigger

	walls         []Wall
	player        Player
	playerBullets []Bullet
	enemyBullets  []Bullet
	enemies       []Enemy

	session Session
	gate    cueGate
}

// NewEngine builds the arena, places the player at the spawn point and
// spawns the first level's robots. A nil trigger discards cues.
func NewEngine(cfg config.BerzerkConfig, rng *rand.Rand, trigger cue.Trigger) *Engine {
	if trigger == nil {
		trigger = cue.Nop
	}
	arena := Arena{W: cfg.Arena.Width, H: cfg.Arena.Height}
	spawn := SpawnPoint(arena)

	e := &Engine{
		cfg:     cfg,
		arena:   arena,
		rng:     rng,
		trigger: trigger,
		walls:   Layout(arena),
		player:  NewPlayer(spawn.X, spawn.Y, cfg.Player),
		session: Session{Level: 1, Status: Running},
		gate:    newCueGate(cfg.Rules.CueCooldown),
	}
	e.spawnEnemies(cfg.Rules.EnemiesForLevel(1))
	return e
}

// Arena returns the playfield size.
func (e *Engine) Arena() Arena { return e.arena }

// Session returns a copy of the session state.
func (e *Engine) Session() Session { return e.session }

// Running reports whether the session accepts gameplay input.
func (e *Engine) Running() bool { return e.session.Status == Running }

// SetHeadingAndMove faces h and starts continuous movement.
func (e *Engine) SetHeadingAndMove(h Heading) {
	if !e.Running() {
		e.player.ClearIntent()
		return
	}
	e.player.SetHeading(h)
}

// ClearMoveIntent stops continuous movement.
func (e *Engine) ClearMoveIntent() {
	e.player.ClearIntent()
}

// Fire stops the player and shoots along the current heading. The shot is
// never throttled; only its cue is.
func (e *Engine) Fire() {
	if !e.Running() {
		e.player.ClearIntent()
		return
	}
	e.player.ClearIntent()
	e.playerBullets = append(e.playerBullets, NewBullet(e.player.Pos.X, e.player.Pos.Y, e.player.Heading))
	e.gatedCue(cue.PlayerFire)
}

// HardReset starts a new run from level 1. Accepted in any state.
func (e *Engine) HardReset() {
	spawn := SpawnPoint(e.arena)

	e.session = Session{Level: 1, Status: Running}
	e.player.Reset(spawn.X, spawn.Y)
	e.player.ClearIntent()
	e.playerBullets = e.playerBullets[:0]
	e.enemyBullets = e.enemyBullets[:0]
	e.enemies = e.enemies[:0]
	e.gate.Disarm()
	e.spawnEnemies(e.cfg.Rules.EnemiesForLevel(1))
}

// Tick advances the simulation by one step of dt seconds. It does nothing
// unless the session is running. Later steps observe the mutations of
// earlier ones.
func (e *Engine) Tick(dt float64) {
	if !e.Running() {
		return
	}
	e.session.Tick++

	e.player.Move(e.cfg.Player.Speed)
	e.updatePlayerBullets()
	e.updateEnemyBullets()
	e.gate.Elapse(dt)
	e.prune()
	e.enemyChanceShoot()
	e.updateEnemies()
	e.updateWalls()

	if e.player.Health == 0 {
		e.gatedCue(cue.PlayerDefeated)
		e.player.ClearIntent()
		e.session.Status = GameOver
		return
	}

	e.checkExit()
	if e.session.NewLevel {
		e.advanceLevel()
	}
}

// gatedCue triggers id when the shared cooldown allows it. The gate is
// armed before the trigger runs.
func (e *Engine) gatedCue(id cue.ID) {
	if e.gate.Ready() {
		e.gate.Arm()
		e.trigger.Trigger(id)
	}
}

func (e *Engine) updatePlayerBullets() {
	size := e.cfg.Bullet.Size
	for i := range e.playerBullets {
		b := &e.playerBullets[i]
		if !b.Alive {
			continue
		}
		b.Advance(e.cfg.Bullet.Speed)
		if e.cfg.Bullet.CullOffArena && b.OutOf(e.arena.W, e.arena.H) {
			b.Alive = false
			continue
		}

		for j := range e.enemies {
			en := &e.enemies[j]
			if !en.Alive || !b.HitsEnemy(*en, size) {
				continue
			}
			b.Alive = false
			en.Alive = false
			e.session.Score += e.cfg.Rules.KillScore
			e.gatedCue(cue.EnemyKilled)
		}

		for _, w := range e.walls {
			if b.HitsWall(w, size) {
				b.Alive = false
			}
		}
	}
}

func (e *Engine) updateEnemyBullets() {
	size := e.cfg.Bullet.Size
	for i := range e.enemyBullets {
		b := &e.enemyBullets[i]
		if !b.Alive {
			continue
		}
		b.Advance(e.cfg.Bullet.Speed)
		if e.cfg.Bullet.CullOffArena && b.OutOf(e.arena.W, e.arena.H) {
			b.Alive = false
			continue
		}

		if b.HitsPlayer(e.player, size) {
			b.Alive = false
			e.player.TakeHit()
			e.gatedCue(cue.PlayerHit)
		}

		for _, w := range e.walls {
			if b.HitsWall(w, size) {
				b.Alive = false
			}
		}
	}
}

// prune drops dead entities, keeping the order of the living.
func (e *Engine) prune() {
	e.playerBullets = filterBullets(e.playerBullets)
	e.enemyBullets = filterBullets(e.enemyBullets)

	n := 0
	for _, en := range e.enemies {
		if en.Alive {
			e.enemies[n] = en
			n++
		}
	}
	e.enemies = e.enemies[:n]
}

func filterBullets(bs []Bullet) []Bullet {
	n := 0
	for _, b := range bs {
		if b.Alive {
			bs[n] = b
			n++
		}
	}
	return bs[:n]
}

// enemyChanceShoot lets one random robot shoot on a lucky roll. A closed
// cue gate also blocks the shot.
func (e *Engine) enemyChanceShoot() {
	if len(e.enemies) == 0 {
		return
	}
	rules := e.cfg.Rules
	if uniformInt(e.rng, 1, rules.FireRollMax(e.session.Level)) != rules.FireHit {
		return
	}

	shooter := e.enemies[e.rng.Intn(len(e.enemies))]
	if !e.gate.Ready() {
		return
	}
	e.gate.Arm()
	e.trigger.Trigger(cue.EnemyFire)
	e.enemyBullets = append(e.enemyBullets, NewBullet(shooter.Pos.X, shooter.Pos.Y, shooter.Heading))
}

// updateEnemies moves robots in order and stops at the first collision of
// the tick.
func (e *Engine) updateEnemies() {
	for i := range e.enemies {
		en := &e.enemies[i]
		en.Update(e.player.Pos, e.rng, e.cfg.Enemy)

		for _, w := range e.walls {
			if en.HitsWall(w) {
				en.Alive = false
				e.session.Score += e.cfg.Rules.KillScore
				e.gatedCue(cue.EnemyKilled)
				return
			}
		}

		if e.player.HitsEnemy(*en) {
			en.Alive = false
			e.player.TakeHit()
			e.player.PlaceRandom(e.arena, e.rng)
			e.gatedCue(cue.PlayerHit)
			return
		}
	}
}

// updateWalls punishes the player for every wall touched this tick.
func (e *Engine) updateWalls() {
	for _, w := range e.walls {
		if !e.player.HitsWall(w) {
			continue
		}
		e.player.TakeHit()
		e.player.PlaceRandom(e.arena, e.rng)
		e.gatedCue(cue.PlayerHit)
		e.player.Knockback(e.cfg.Player.Knockback)
	}
}

// checkExit raises the level when the player stands in the exit with the
// robot collection empty. Robots killed this tick are not pruned yet and
// still count.
func (e *Engine) checkExit() {
	if ExitZone(e.arena).Contains(e.player.Pos) && len(e.enemies) == 0 {
		e.session.Level++
		e.session.NewLevel = true
	}
}

func (e *Engine) advanceLevel() {
	defer func() { e.session.NewLevel = false }()

	if e.session.Level >= e.cfg.Rules.FinalLevel {
		e.player.ClearIntent()
		e.session.Status = Won
		return
	}

	spawn := SpawnPoint(e.arena)
	e.player.Reset(spawn.X, spawn.Y)
	e.playerBullets = e.playerBullets[:0]
	e.spawnEnemies(e.cfg.Rules.EnemiesForLevel(e.session.Level))
}

func (e *Engine) spawnEnemies(n int) {
	for range n {
		p := RandomPlacement(e.rng, e.arena)
		e.enemies = append(e.enemies, NewEnemy(p.X, p.Y, e.cfg.Enemy.Size))
	}
}
