package main

import (
	"bufio"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/freekieb7/jot/json"
)

// Demo server: responses are assembled from JSON fragments built in
// separate helpers and joined at the end.
func main() {
	godotenv.Load()

	addr := os.Getenv("JOT_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/status", func(c *fiber.Ctx) error {
		body := requestMeta(c).
			Join(json.Row("checks", healthChecks()))

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(json.Marshal(body))
	})

	app.Get("/events", func(c *fiber.Ctx) error {
		doc := json.Row("request_id", json.String(uuid.NewString())).
			Join(json.Row("events", eventLog(1000)))

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			for chunk := range json.Stream(doc, 4096) {
				if _, err := w.Write(chunk); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		})
		return nil
	})

	log.Printf("listening on %s", addr)
	log.Fatal(app.Listen(addr))
}

func requestMeta(c *fiber.Ctx) json.PartialObject {
	return json.Row("request_id", json.String(uuid.NewString())).
		Join(json.Row("path", json.String(c.Path()))).
		Join(json.Row("service", json.String("jot-demo")))
}

func healthChecks() json.PartialArray {
	check := func(name string, healthy bool) json.PartialObject {
		return json.Row("name", json.String(name)).
			Join(json.Row("healthy", json.Bool(healthy)))
	}

	return json.Element(check("self", true)).
		Join(json.Element(check("disk", true)))
}

func eventLog(n int) json.PartialArray {
	var events json.PartialArray
	for i := 0; i < n; i++ {
		events = events.Join(json.Element(json.Rows(
			json.P("seq", json.Int(i)),
			json.P("message", json.String("event payload\n")),
		)))
	}
	return events
}
