package bot

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/devmaikelrm/BotModerno-sub000/admin"
	"github.com/devmaikelrm/BotModerno-sub000/command"
	"github.com/devmaikelrm/BotModerno-sub000/config"
	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/gate"
	"github.com/devmaikelrm/BotModerno-sub000/handler/report"
	"github.com/devmaikelrm/BotModerno-sub000/handler/verify"
)

var dg *discordgo.Session

// Start wires everything together and blocks until SIGINT/SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}

	db.InitDB(config.Cfg.Database.Path)

	redisClient := initRedis(config.Cfg.Redis.Addr)
	challengeTTL := time.Duration(config.Cfg.ModerBot.Gate.ChallengeTTLSeconds) * time.Second
	accessGate := gate.New(
		config.Cfg.Commands.Allowguilds,
		gate.NewChallengeStore(redisClient, challengeTTL),
	)

	report.RegisterHandlers(accessGate)
	verify.RegisterHandlers(accessGate)

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg, accessGate)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	for _, guildID := range config.Cfg.Commands.Allowguilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}

	// The admin panel talks HTTP; it shares the session for fan-out on
	// approvals triggered from the web side.
	go func() {
		if err := admin.Start(dg); err != nil {
			log.Printf("Admin API stopped: %v", err)
		}
	}()

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// initRedis connects the challenge store backend. The gate cannot work
// without it, so a failed ping is fatal.
func initRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis at %s: %v", addr, err)
	}
	log.Println("Redis connected successfully")
	return client
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
