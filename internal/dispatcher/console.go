package dispatcher

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"atrack-svr/internal/server"
	"atrack-svr/internal/store"
)

/* =======================================================================
                         OPERATOR CONSOLE
   Line-oriented stdin commands of the form <deviceID>|<command>,
   relayed to the matching live connection.
======================================================================= */

// RunConsole blocks reading operator lines until stdin closes.
func RunConsole(registry *server.Registry, lg *slog.Logger) {
	log := lg.With("component", "console")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := relay(registry, line); err != nil {
			log.Warn("console command rejected", "line", line, "err", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn("console read error", "err", err)
	}
}

func relay(registry *server.Registry, line string) error {
	idStr, cmd, found := strings.Cut(line, "|")
	if !found || strings.TrimSpace(cmd) == "" {
		return fmt.Errorf("expected <deviceID>|<command>")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		return fmt.Errorf("bad device id %q", idStr)
	}

	// "<id>|last" is answered locally from the store instead of the device.
	if strings.EqualFold(strings.TrimSpace(cmd), "last") {
		for name, val := range store.GetLastValues(id) {
			fmt.Printf("%s=%s\n", name, val)
		}
		return nil
	}

	sess, ok := registry.Get(id)
	if !ok {
		return fmt.Errorf("device %d not connected", id)
	}
	return sess.SendCommand(strings.TrimSpace(cmd))
}
