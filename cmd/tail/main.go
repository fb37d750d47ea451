package main

import (
	"log"
	"os"
	"os/signal"

	"github.com/streamkit/eventsource"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: tail <endpoint>")
	}

	es, err := eventsource.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer es.Close()

	// Callbacks run on the connection's goroutine; log.Logger synchronizes
	// access to stdout for us.
	out := log.New(os.Stdout, "", 0)

	es.OnOpen(func() { out.Println("connected") })
	es.OnMessage(func(ev eventsource.Event) { out.Println(ev.Data) })
	es.AddEventListener("close", func(eventsource.Event) { out.Println("server said goodbye") })

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
