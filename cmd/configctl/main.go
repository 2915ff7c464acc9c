// configctl is a one-shot inspector for a remote config backend: it fetches
// the current configuration set and prints every visible key with its value
// and provenance.
//
// Usage:
//
//	configctl [namespace]
//
// Connection settings come from the environment (BACKEND_* / CACHE_*) or a
// JSON file referenced by CONFIG.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	configkeeper "github.com/MKhiriev/go-config-keeper"
	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	sourceStyle = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return err
	}

	namespace := ""
	if len(os.Args) > 1 {
		namespace = os.Args[1]
	}

	quiet := zerolog.Nop()
	client := configkeeper.New(configkeeper.Options{
		BaseURL:   cfg.Backend.BaseURL,
		Project:   cfg.Backend.Project,
		APIKey:    cfg.Backend.APIKey,
		ClientID:  cfg.Backend.ClientID,
		CachePath: cfg.Cache.Path,
		Timeout:   cfg.Backend.Timeout,
		Logger:    &quiet,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err = client.Initialize(ctx); err != nil {
		return err
	}
	defer client.Terminate()

	handle, err := client.Fetch(ctx)
	if err != nil {
		return err
	}
	result, err := handle.Await(ctx)
	if err != nil {
		return err
	}
	if result.Status == models.FetchStatusFailure {
		fmt.Println(errStyle.Render("fetch failed: ") + result.Message)
	}

	info, err := client.GetInfo()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("project %s, namespace %q", cfg.Backend.Project, namespace)))
	fmt.Println(sourceStyle.Render(fmt.Sprintf("last fetch: %s (%s)",
		info.LastFetchStatus, formatMillis(info.FetchTimeMillis))))

	keys, err := client.GetKeys(configkeeper.WithNamespace(namespace))
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println(sourceStyle.Render("no keys"))
		return nil
	}

	for _, key := range keys {
		value, valueInfo, getErr := client.GetString(key, configkeeper.WithNamespace(namespace))
		if getErr != nil {
			return getErr
		}
		fmt.Printf("%s = %s %s\n",
			keyStyle.Render(key),
			value,
			sourceStyle.Render("("+valueInfo.Source.String()+")"))
	}

	return nil
}

func formatMillis(millis int64) string {
	if millis == 0 {
		return "never"
	}
	return time.UnixMilli(millis).Local().Format(time.RFC3339)
}
