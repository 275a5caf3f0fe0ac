package helpers

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"
)

type FileLogger struct {
	logger         *log.Logger
	telegramOutput bool
	telegramToken  string
	telegramChatId string
}

var Logger = NewFileLogger(os.Stderr)

func NewFileLogger(out io.Writer) *FileLogger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN", "INFO ", "DEBUG", "TRACE"}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(log.InfoLevel)

	return &FileLogger{logger: logger}
}

// ConfigureLogger points the shared logger to the configured file. The terminal dashboard owns
// stdout, so nothing is written there once this has run.
func ConfigureLogger(config Config) error {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}
	if config.TelegramOutput {
		if config.TelegramToken == "" {
			return fmt.Errorf("error: telegramOutput set to true but telegramToken parameter not found")
		}
		if config.TelegramChatId == "" {
			return fmt.Errorf("error: telegramOutput set to true but telegramChatId parameter not found")
		}
	}

	f, err := os.OpenFile(config.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	Logger.logger.SetOutput(f)
	Logger.logger.SetLevel(level)
	Logger.telegramOutput = config.TelegramOutput
	Logger.telegramToken = config.TelegramToken
	Logger.telegramChatId = config.TelegramChatId
	return nil
}

func (l *FileLogger) Errorln(args ...interface{}) {
	l.logger.Errorln(args...)
}

func (l *FileLogger) Fatalln(args ...interface{}) {
	l.logger.Fatalln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	l.logger.Warnln(args...)
}

func (l *FileLogger) Infoln(args ...interface{}) {
	l.logger.Infoln(args...)
	if l.telegramOutput && len(args) > 0 {
		err := sendOnTelegramChannel(fmt.Sprint(args[0]), l.telegramToken, l.telegramChatId)
		if err != nil {
			l.logger.Errorln("telegram: " + err.Error())
		}
	}
}

func (l *FileLogger) Debugln(args ...interface{}) {
	l.logger.Debugln(args...)
}

func (l *FileLogger) Traceln(args ...interface{}) {
	l.logger.Traceln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.LevelDesc[entry.Level], timestamp, entry.Message)), nil
}

func sendOnTelegramChannel(message string, token string, chatID string) error {
	b, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return err
	}

	id, err := b.ChatByID(chatID)
	if err != nil {
		return err
	}
	_, err = b.Send(id, message)
	return err
}
