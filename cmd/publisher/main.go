// Mock telemetry generator: publishes tourist location updates so the
// geofence pipeline can be exercised end-to-end without a mobile client.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type telemetryMessage struct {
	TouristID  string  `json:"tourist_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	LocationID *int    `json:"location_id,omitempty"`
	Timestamp  int64   `json:"timestamp"`
}

// Centre of a demo high-risk zone around Kamakhya hills, Guwahati.
const (
	riskZoneLat = 26.1665
	riskZoneLng = 91.7047
)

func randomTouristID() string {
	return fmt.Sprintf("T-%06d", rand.Intn(1000000))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("saferove-mock-publisher")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	touristPool := make([]string, 5)
	for i := range touristPool {
		touristPool[i] = randomTouristID()
	}

	log.Printf("connected to %s, publishing every %ds...", broker, intervalSec)
	log.Printf("tourist pool: %v", touristPool)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		tid := touristPool[rand.Intn(len(touristPool))]

		var lat, lng float64
		// 30% chance to wander into the demo risk zone
		if rand.Float64() < 0.3 {
			lat = riskZoneLat + (rand.Float64()-0.5)*0.005
			lng = riskZoneLng + (rand.Float64()-0.5)*0.005
		} else {
			lat = riskZoneLat + (rand.Float64()-0.5)*0.5
			lng = riskZoneLng + (rand.Float64()-0.5)*0.5
		}

		msg := telemetryMessage{
			TouristID: tid,
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Now().Unix(),
		}
		if rand.Float64() < 0.5 {
			locationID := 1 + rand.Intn(20)
			msg.LocationID = &locationID
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/tourists/%s/location", tid)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
