package main

import (
	"github.com/devmaikelrm/BotModerno-sub000/bot"
)

func main() {
	bot.Start()
}
