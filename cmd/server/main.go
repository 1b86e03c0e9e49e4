/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift scheduling server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize SQLite store
  3. Create the scheduling service and API handler
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: shifts.db)
           Use ":memory:" for an in-memory database
  -seed    Load a demo week of shifts on startup

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/shifts.db"

  # Run with in-memory database and demo data
  ./server -db=":memory:" -seed

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/shift-engine/api"
	"github.com/warp/shift-engine/schedule"
	"github.com/warp/shift-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "shifts.db", "SQLite database path")
	seed := flag.Bool("seed", false, "load a demo week of shifts on startup")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize engine and handler
	service := schedule.NewService(store, schedule.DefaultPolicy())
	handler := api.NewHandler(service)

	if *seed {
		if err := seedDemoWeek(context.Background(), service); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api/shifts", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// seedDemoWeek loads a week of non-conflicting demo shifts through the
// service so seeded data passes the same gates as API writes.
func seedDemoWeek(ctx context.Context, service *schedule.Service) error {
	start := schedule.Today()
	employees := []schedule.EmployeeID{"emp-alice", "emp-bob", "emp-carol"}
	windows := [][2]string{
		{"09:00", "17:00"},
		{"13:00", "21:00"},
		{"22:00", "06:00"}, // overnight
	}

	for day := 0; day < 5; day++ {
		date := start.AddDays(day).String()
		for i, employee := range employees {
			_, err := service.Create(ctx, schedule.ShiftInput{
				EmployeeID: employee,
				Date:       date,
				StartTime:  windows[i][0],
				EndTime:    windows[i][1],
			})
			if err != nil && !schedule.IsConflict(err) {
				return err
			}
		}
	}

	log.Printf("Seeded demo shifts for %d employees over 5 days", len(employees))
	return nil
}
