package utilities

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// AppendAudit appends one line to the day's audit file for the given
// prefix, creating the logs directory on first use.
func AppendAudit(prefix, message string) {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Println("audit dir:", err)
		return
	}
	filename := filepath.Join("logs", prefix+"_"+time.Now().Format("20060102")+".log")

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Println("audit open:", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(time.Now().Format("15:04:05") + " - " + message + "\n"); err != nil {
		log.Println("audit write:", err)
	}
}
