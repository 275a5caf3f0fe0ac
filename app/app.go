package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AODepthView/helpers"
	"gitlab.com/aoterocom/AODepthView/interfaces"
	"gitlab.com/aoterocom/AODepthView/providers/binance"
	"gitlab.com/aoterocom/AODepthView/providers/paper"
	"gitlab.com/aoterocom/AODepthView/services"
	"gitlab.com/aoterocom/AODepthView/strategies"
	"gitlab.com/aoterocom/AODepthView/ui/components"
	"gitlab.com/aoterocom/AODepthView/ui/terminal"
	"gitlab.com/aoterocom/AODepthView/ui/web"
)

var flags = []cli.Flag{
	&cli.StringFlag{Name: "conf", Value: "conf.env", Usage: "env file with the configuration"},
	&cli.StringFlag{Name: "pair", Usage: "market pair, e.g. BTC-USDT"},
	&cli.StringFlag{Name: "provider", Usage: "depth provider: binance or paper"},
	&cli.IntFlag{Name: "levels", Usage: "book levels to show: 5, 10 or 20"},
	&cli.StringFlag{Name: "refresh", Usage: "paper tick and page refresh interval, e.g. 500ms, 1s"},
	&cli.Float64Flag{Name: "saturation", Usage: "quantity drawn as a full bar"},
	&cli.IntFlag{Name: "padding", Usage: "quantity bar padding in pixels"},
	&cli.StringFlag{Name: "headline", Usage: "panel headline"},
	&cli.StringFlag{Name: "algo", Usage: "strategy run on every snapshot: spread or profit, empty for none"},
}

func NewApp() *cli.App {
	return &cli.App{
		Name:  "aodepthview",
		Usage: "market depth table in the terminal or the browser",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:   "term",
				Usage:  "render the depth table in the terminal",
				Action: runTerminal,
			},
			{
				Name:  "web",
				Usage: "serve the depth table as HTML",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "listen", Usage: "listen address"},
				},
				Action: runWeb,
			},
		},
	}
}

// Config merges the env file, the environment and the command line, in increasing priority.
func Config(c *cli.Context) (helpers.Config, error) {
	config, err := helpers.LoadConfig(c.String("conf"))
	if err != nil {
		return helpers.Config{}, err
	}

	if c.IsSet("pair") {
		config.Pair = c.String("pair")
	}
	if c.IsSet("provider") {
		config.Provider = c.String("provider")
	}
	if c.IsSet("levels") {
		config.Levels = c.Int("levels")
	}
	if c.IsSet("refresh") {
		if config.Refresh, err = helpers.ParseInterval(c.String("refresh")); err != nil {
			return helpers.Config{}, err
		}
	}
	if c.IsSet("saturation") {
		config.Saturation = c.Float64("saturation")
	}
	if c.IsSet("padding") {
		config.Padding = c.Int("padding")
	}
	if c.IsSet("headline") {
		config.Headline = c.String("headline")
	}
	if c.IsSet("algo") {
		config.Algo = c.String("algo")
	}
	if c.IsSet("listen") {
		config.Listen = c.String("listen")
	}

	return config, config.Validate()
}

func NewProvider(config helpers.Config) interfaces.DepthProvider {
	if config.Provider == helpers.ProviderPaper {
		return paper.NewPaperService(config.Refresh, time.Now().UnixNano())
	}
	return binance.NewBinanceService(config.BinanceAPIKey, config.BinanceAPISecret)
}

// NewAlgo builds the configured strategy service, or nil when no algo is configured.
func NewAlgo(config helpers.Config, metrics *services.MetricsService) (*services.AlgoService, error) {
	if config.Algo == "" {
		return nil, nil
	}
	params := strategies.DefaultParams()
	params.SpreadThreshold = config.AlgoSpreadThreshold
	params.PriceThreshold = config.AlgoPriceThreshold
	strategy, err := strategies.StrategyFactory(config.Algo, params)
	if err != nil {
		return nil, err
	}
	return services.NewAlgoService(strategy, services.NewOrderBookService(), metrics), nil
}

func PanelOptions(config helpers.Config) components.Options {
	return components.Options{
		Headline:    config.Headline,
		Saturation:  config.Saturation,
		CellPadding: config.Padding,
	}
}

type runtime struct {
	config  helpers.Config
	metrics *services.MetricsService
	depth   *services.DepthService
	panel   *components.Panel
}

func setup(c *cli.Context) (*runtime, error) {
	config, err := Config(c)
	if err != nil {
		return nil, err
	}
	if err := helpers.ConfigureLogger(config); err != nil {
		return nil, err
	}

	metrics := services.NewMetricsService()
	algo, err := NewAlgo(config, metrics)
	if err != nil {
		return nil, err
	}
	provider := NewProvider(config)
	helpers.Logger.Infoln(fmt.Sprintf("Depth view started: %s on %s, %d levels", config.Symbol(), provider.Name(), config.Levels))

	depth := services.NewDepthService(provider, metrics, config.Symbol(), config.Levels)
	if algo != nil {
		helpers.Logger.Infoln(fmt.Sprintf("Running %s algo", config.Algo))
		depth.WithAlgo(algo)
	}

	return &runtime{
		config:  config,
		metrics: metrics,
		depth:   depth,
		panel:   components.NewPanel(PanelOptions(config)),
	}, nil
}

func runTerminal(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	rows, errC := rt.depth.Start(ctx)
	go logProviderError(errC)

	userInterface := terminal.NewUserInterface(rt.panel, rt.metrics)
	return userInterface.Run(ctx, rows)
}

func runWeb(c *cli.Context) error {
	rt, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()
	rows, errC := rt.depth.Start(ctx)
	go logProviderError(errC)

	server := web.NewServer(rt.panel, rt.metrics, rt.config.Refresh)
	go server.Consume(ctx, rows)
	return server.ListenAndServe(ctx, rt.config.Listen)
}

func logProviderError(errC <-chan error) {
	for err := range errC {
		helpers.Logger.Errorln(err)
	}
}
