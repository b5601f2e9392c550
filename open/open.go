// Package open hands a stream url to a media player.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/key"
	"github.com/spf13/viper"
)

// Stream starts player.default with url and returns without waiting for it.
// The system url handler is used when no player is configured.
func Stream(url string) error {
	cmd, err := command(url, viper.GetString(key.Player))
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	return nil
}

func command(url, player string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Linux:
		if player == "" {
			player = "xdg-open"
		}
		return exec.Command(player, url), nil
	case constant.Darwin:
		if player == "" {
			return exec.Command("open", url), nil
		}
		return exec.Command("open", "-a", player, url), nil
	case constant.Windows:
		if player == "" {
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", url), nil
		}
		// & separates commands for start
		return exec.Command("cmd", "/C", "start", "", player, strings.ReplaceAll(url, "&", "^&")), nil
	case constant.Android:
		if player == "" {
			return exec.Command("termux-open", url), nil
		}
		return exec.Command("termux-open", "--choose", url), nil
	default:
		return nil, fmt.Errorf("opening urls is not supported on %s", runtime.GOOS)
	}
}
