// Package interactive provides the interactive command-line interface of
// leaudio-sim.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/leaudio/leaudio-go/internal/sim"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/registry"
	"github.com/leaudio/leaudio-go/pkg/service"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

// Deps are the components the shell drives.
type Deps struct {
	Orchestrator *service.Orchestrator
	Network      *sim.Network
	Audio        *sim.AudioHAL
}

// Shell is the interactive command loop.
type Shell struct {
	rl        *readline.Instance
	closeOnce sync.Once

	deps Deps

	// Background audio started by play and mic.
	mu        sync.Mutex
	playStop  context.CancelFunc
	micStop   context.CancelFunc
	toneHz    float64
	toneFmt   model.SessionConfig
	lastGroup int
}

// New creates the shell and its terminal.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "leaudio> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{
		rl:        rl,
		toneHz:    440,
		toneFmt:   service.DefaultSourceFormat,
		lastGroup: model.GroupUnknown,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Close releases the terminal.
func (s *Shell) Close() {
	s.closeOnce.Do(func() { _ = s.rl.Close() })
}

// Run reads commands until quit, EOF or ctx is done. Quitting cancels the
// application context.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc, deps Deps) {
	s.deps = deps
	defer s.stopBackground()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			s.println("Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			s.println("Exiting...")
			cancel()
			return
		}
		if err := s.dispatch(ctx, cmd, args); err != nil {
			s.printf("Error: %v\n", err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		s.printHelp()
		return nil

	case "peers", "ls":
		return s.cmdPeers()
	case "groups", "g":
		return s.cmdGroups()
	case "connect", "c":
		return s.withPeer(args, s.deps.Orchestrator.Connect)
	case "disconnect":
		return s.withPeer(args, s.deps.Orchestrator.Disconnect)
	case "remove":
		return s.withPeer(args, s.deps.Orchestrator.RemoveDevice)
	case "drop":
		return s.withPeer(args, s.deps.Network.DropLink)
	case "restore":
		return s.withPeer(args, s.deps.Network.Restore)

	case "active":
		return s.cmdActive(args)
	case "stream":
		return s.cmdStream(args)
	case "suspend":
		return s.withGroup(args, s.deps.Orchestrator.GroupSuspend)
	case "stop":
		return s.withGroup(args, s.deps.Orchestrator.GroupStop)
	case "destroy":
		return s.withGroup(args, s.deps.Orchestrator.GroupDestroy)

	case "resume":
		return s.cmdAudioRequest(args, true)
	case "pause":
		return s.cmdAudioRequest(args, false)
	case "metadata", "md":
		return s.cmdMetadata(args)
	case "play":
		return s.cmdPlay(ctx, args)
	case "mic":
		return s.cmdMic(ctx, args)

	case "sessions":
		return s.cmdSessions()
	case "traffic":
		return s.cmdTraffic()
	case "dump", "d":
		return s.deps.Orchestrator.Dump(s.rl.Stdout())

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
}

func (s *Shell) printHelp() {
	s.println(`
LE Audio Simulator Commands:
  Devices:
    peers                        - List simulated peers
    connect <peer>               - Connect a peer (index or address)
    disconnect <peer>            - Disconnect a peer
    remove <peer>                - Forget a peer
    drop <peer>                  - Simulate link loss (peer unreachable)
    restore <peer>               - Make a dropped peer reachable again

  Groups:
    groups                       - List groups and members
    active <group|none>          - Select or clear the active group
    stream <group> [context]     - Start streaming (default: media)
    suspend <group>              - Suspend a streaming group
    stop <group>                 - Stop a group
    destroy <group>              - Remove every member of a group

  Audio:
    resume <sink|source>         - Resume request from the audio subsystem
    pause <sink|source>          - Suspend request from the audio subsystem
    metadata <track>...          - Playing tracks: music, movie, speech, call,
                                   game, ringtone, notification, alarm
    play [hz|stop]               - Feed a sine tone to the sink direction
    mic [stop]                   - Feed microphone frames from source peers
    sessions                     - Show audio session states

  Diagnostics:
    traffic                      - Show channel traffic counters
    dump                         - Print the orchestrator diagnostics

  Other:
    help                         - Show this help
    quit                         - Exit`)
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("peers"),
		readline.PcItem("connect"),
		readline.PcItem("disconnect"),
		readline.PcItem("remove"),
		readline.PcItem("drop"),
		readline.PcItem("restore"),
		readline.PcItem("groups"),
		readline.PcItem("active"),
		readline.PcItem("stream",
			readline.PcItem("media"), readline.PcItem("conversational"), readline.PcItem("game"),
		),
		readline.PcItem("suspend"),
		readline.PcItem("stop"),
		readline.PcItem("destroy"),
		readline.PcItem("resume", readline.PcItem("sink"), readline.PcItem("source")),
		readline.PcItem("pause", readline.PcItem("sink"), readline.PcItem("source")),
		readline.PcItem("metadata",
			readline.PcItem("music"), readline.PcItem("movie"), readline.PcItem("speech"),
			readline.PcItem("call"), readline.PcItem("game"), readline.PcItem("ringtone"),
			readline.PcItem("notification"), readline.PcItem("alarm"),
		),
		readline.PcItem("play", readline.PcItem("stop")),
		readline.PcItem("mic", readline.PcItem("stop")),
		readline.PcItem("sessions"),
		readline.PcItem("traffic"),
		readline.PcItem("dump"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Devices

func (s *Shell) cmdPeers() error {
	var connected map[model.Address]bool
	err := s.deps.Orchestrator.Inspect(func(r *registry.Registry) {
		connected = make(map[model.Address]bool)
		for _, d := range r.Devices() {
			connected[d.Address] = d.IsConnected()
		}
	})
	if err != nil {
		return err
	}

	for i, p := range s.deps.Network.Peers() {
		state := "unknown"
		if c, ok := connected[p.Address]; ok {
			state = "disconnected"
			if c {
				state = "connected"
			}
		}
		set := "-"
		if p.SetID != model.GroupUnknown {
			set = strconv.Itoa(p.SetID)
		}
		s.printf("  [%d] %s  set %s  sink 0x%08x  source 0x%08x  %s  (%s)\n",
			i, p.Address, set, uint32(p.SinkLocations), uint32(p.SourceLocations), p.Contexts, state)
	}
	return nil
}

// resolvePeer accepts a peer index from the peers list or an address.
func (s *Shell) resolvePeer(arg string) (model.Address, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		peers := s.deps.Network.Peers()
		if i < 0 || i >= len(peers) {
			return model.Address{}, fmt.Errorf("no peer %d", i)
		}
		return peers[i].Address, nil
	}
	return model.ParseAddress(arg)
}

func (s *Shell) withPeer(args []string, fn func(model.Address) error) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: <command> <peer>")
	}
	addr, err := s.resolvePeer(args[0])
	if err != nil {
		return err
	}
	if err := fn(addr); err != nil {
		return err
	}
	s.printf("OK %s\n", addr)
	return nil
}

// Groups

func (s *Shell) cmdGroups() error {
	return s.deps.Orchestrator.Inspect(func(r *registry.Registry) {
		groups := r.Groups()
		if len(groups) == 0 {
			s.println("  no groups")
		}
		for _, g := range groups {
			s.printf("  group %d: %s (target %s), contexts %s\n", g.ID, g.State, g.TargetState, g.ActiveContexts)
			for _, d := range r.Members(g.ID) {
				s.printf("    %s connected=%t\n", d.Address, d.IsConnected())
			}
		}
	})
}

func (s *Shell) parseGroup(args []string) (int, error) {
	if len(args) < 1 {
		s.mu.Lock()
		last := s.lastGroup
		s.mu.Unlock()
		if last == model.GroupUnknown {
			return 0, fmt.Errorf("no group given")
		}
		return last, nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid group %q", args[0])
	}
	return id, nil
}

func (s *Shell) withGroup(args []string, fn func(int) error) error {
	id, err := s.parseGroup(args)
	if err != nil {
		return err
	}
	if err := fn(id); err != nil {
		return err
	}
	s.printf("OK group %d\n", id)
	return nil
}

func (s *Shell) cmdActive(args []string) error {
	if len(args) == 1 && strings.EqualFold(args[0], "none") {
		return s.deps.Orchestrator.GroupSetActive(model.GroupUnknown)
	}
	id, err := s.parseGroup(args)
	if err != nil {
		return err
	}
	if err := s.deps.Orchestrator.GroupSetActive(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.lastGroup = id
	s.mu.Unlock()
	s.printf("Active group %d\n", id)
	return nil
}

func (s *Shell) cmdStream(args []string) error {
	id, err := s.parseGroup(args)
	if err != nil {
		return err
	}
	ctx := model.ContextMedia
	if len(args) > 1 {
		var ok bool
		if ctx, ok = model.ParseContextType(args[1]); !ok {
			return fmt.Errorf("unknown context %q", args[1])
		}
	}
	if err := s.deps.Orchestrator.GroupStream(id, ctx); err != nil {
		return err
	}
	s.printf("Stream requested: group %d %s\n", id, ctx)
	return nil
}

// Audio

func parseDirection(args []string) (model.Direction, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("usage: <command> <sink|source>")
	}
	switch strings.ToLower(args[0]) {
	case "sink", "out", "speaker":
		return model.DirectionSink, nil
	case "source", "in", "mic":
		return model.DirectionSource, nil
	}
	return 0, fmt.Errorf("unknown direction %q", args[0])
}

func (s *Shell) cmdAudioRequest(args []string, resume bool) error {
	dir, err := parseDirection(args)
	if err != nil {
		return err
	}
	var ev service.Event = service.AudioSuspend{Direction: dir}
	if resume {
		ev = service.AudioResume{Direction: dir}
	}
	return s.deps.Orchestrator.Submit(ev)
}

var trackNames = map[string]streamconf.Track{
	"music":        {Content: streamconf.ContentMusic, Usage: streamconf.UsageMedia},
	"movie":        {Content: streamconf.ContentMovie, Usage: streamconf.UsageMedia},
	"speech":       {Content: streamconf.ContentSpeech},
	"call":         {Content: streamconf.ContentSpeech, Usage: streamconf.UsageVoiceCommunication},
	"game":         {Usage: streamconf.UsageGame},
	"ringtone":     {Usage: streamconf.UsageNotificationRingtone},
	"notification": {Usage: streamconf.UsageNotification},
	"alarm":        {Usage: streamconf.UsageAlarm},
}

func (s *Shell) cmdMetadata(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: metadata <track>...")
	}
	tracks := make([]streamconf.Track, 0, len(args))
	for _, a := range args {
		tr, ok := trackNames[strings.ToLower(a)]
		if !ok {
			return fmt.Errorf("unknown track %q", a)
		}
		tracks = append(tracks, tr)
	}
	return s.deps.Orchestrator.Submit(service.AudioMetadata{Tracks: tracks})
}

func (s *Shell) cmdPlay(ctx context.Context, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(args) > 0 && strings.EqualFold(args[0], "stop") {
		if s.playStop == nil {
			return fmt.Errorf("not playing")
		}
		s.playStop()
		s.playStop = nil
		return nil
	}
	if s.playStop != nil {
		return fmt.Errorf("already playing (play stop first)")
	}
	hz := s.toneHz
	if len(args) > 0 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid frequency %q", args[0])
		}
		hz = v
	}

	playCtx, stop := context.WithCancel(ctx)
	s.playStop = stop
	format := s.toneFmt
	go func() {
		start := time.Now()
		sent, rejected := sim.PlayTone(playCtx, s.deps.Orchestrator, format, hz)
		s.printf("Tone stopped after %s: %d buffers sent, %d rejected\n",
			time.Since(start).Round(time.Millisecond), sent, rejected)
	}()
	s.printf("Playing %.0f Hz\n", hz)
	return nil
}

func (s *Shell) cmdMic(ctx context.Context, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(args) > 0 && strings.EqualFold(args[0], "stop") {
		if s.micStop == nil {
			return fmt.Errorf("microphones not running")
		}
		s.micStop()
		s.micStop = nil
		return nil
	}
	if s.micStop != nil {
		return fmt.Errorf("microphones already running (mic stop first)")
	}

	micCtx, stop := context.WithCancel(ctx)
	s.micStop = stop
	go func() {
		delivered, rejected := s.deps.Network.Capture(micCtx, s.deps.Orchestrator)
		s.printf("Capture stopped: %d frames delivered, %d rejected\n", delivered, rejected)
	}()
	s.println("Microphones running")
	return nil
}

func (s *Shell) stopBackground() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playStop != nil {
		s.playStop()
		s.playStop = nil
	}
	if s.micStop != nil {
		s.micStop()
		s.micStop = nil
	}
}

func (s *Shell) cmdSessions() error {
	sender, receiver := s.deps.Orchestrator.AudioStates()
	s.printf("  sender %s, receiver %s\n", sender, receiver)
	for _, sess := range []struct {
		name string
		s    *sim.Session
	}{{"source", s.deps.Audio.Source()}, {"sink", s.deps.Audio.Sink()}} {
		st := sess.s.State()
		s.printf("  %s session: held=%t started=%t request=%s delay=%dms written=%d\n",
			sess.name, st.Held, st.Started, st.Request, st.RemoteDelayMs, st.BytesWritten)
	}
	return nil
}

// Diagnostics

func (s *Shell) cmdTraffic() error {
	total := s.deps.Network.TotalTraffic()
	s.printf("  %d SDUs, %d bytes\n", total.SDUs, total.Bytes)
	return nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.rl.Stdout(), format, args...)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.rl.Stdout(), msg)
}
