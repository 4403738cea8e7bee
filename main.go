package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel-management/hotel"
	"hotel-management/logger"

	"github.com/spf13/cobra"
)

const defaultDBFile = "hotel.db"

// dateFormat is the day-month-year layout all date prompts use.
const dateFormat = "02-01-2006"

func main() {
	var dbFile string

	rootCmd := &cobra.Command{
		Use:   "hotel",
		Short: "Hotel reservation management system",
		Long:  "Menu-driven manager for room inventory, guests, reservations and billing of a single property.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(dbFile)
			if err != nil {
				return err
			}
			defer mgr.Close()
			runShell(mgr)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", defaultDBFile, "path to the hotel data file")

	roomsCmd := &cobra.Command{
		Use:   "rooms",
		Short: "List all rooms and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(dbFile)
			if err != nil {
				return err
			}
			defer mgr.Close()
			printRoomList(mgr.Rooms(), "ALL ROOMS")
			return nil
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the room occupancy summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(dbFile)
			if err != nil {
				return err
			}
			defer mgr.Close()
			printSummary(mgr.Summary())
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the data file and recreate the default room catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, file := range []string{dbFile, dbFile + "-shm", dbFile + "-wal"} {
				if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("remove %s: %w", file, err)
				}
			}
			mgr, err := openManager(dbFile)
			if err != nil {
				return err
			}
			defer mgr.Close()
			fmt.Printf("Seeded %d rooms into %s\n", len(mgr.Rooms()), dbFile)
			return nil
		},
	}

	rootCmd.AddCommand(roomsCmd, summaryCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openManager(path string) (*hotel.Manager, error) {
	return hotel.NewManager(path, logger.New(log.Default()))
}

// ------------------ interactive shell ------------------

func runShell(mgr *hotel.Manager) {
	sc := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the Hotel Reservation Management System!")

	for {
		printMenu()
		fmt.Print("Enter your choice: ")
		if !sc.Scan() {
			return
		}
		choice := strings.TrimSpace(sc.Text())

		switch choice {
		case "1":
			handleViewRooms(sc, mgr)
		case "2":
			handleMakeReservation(sc, mgr)
		case "3":
			handleCheckIn(sc, mgr)
		case "4":
			handleCheckOut(sc, mgr)
		case "5":
			handleViewReservations(sc, mgr)
		case "6":
			handleSearchReservation(sc, mgr)
		case "7":
			handleCancelReservation(sc, mgr)
		case "8":
			handleGenerateBill(sc, mgr)
		case "9":
			printSummary(mgr.Summary())
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice! Please try again.")
		}
	}
}

func printMenu() {
	fmt.Println("\n================ MAIN MENU ================")
	fmt.Println("  1. View Rooms")
	fmt.Println("  2. Make a Reservation")
	fmt.Println("  3. Check-In")
	fmt.Println("  4. Check-Out")
	fmt.Println("  5. View Reservations")
	fmt.Println("  6. Search Reservation")
	fmt.Println("  7. Cancel Reservation")
	fmt.Println("  8. Generate Bill")
	fmt.Println("  9. Room Summary")
	fmt.Println("  0. Exit")
	fmt.Println("===========================================")
}

func readLine(sc *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func confirm(sc *bufio.Scanner, prompt string) bool {
	return strings.EqualFold(readLine(sc, prompt), "y")
}

func readDate(sc *bufio.Scanner, prompt string) (time.Time, bool) {
	t, err := time.Parse(dateFormat, readLine(sc, prompt))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func handleViewRooms(sc *bufio.Scanner, mgr *hotel.Manager) {
	fmt.Println("\n  1. All Rooms")
	fmt.Println("  2. Available Rooms Only")
	fmt.Println("  3. Available Rooms by Type")
	fmt.Println("  0. Back")

	switch readLine(sc, "Enter your choice: ") {
	case "1":
		printRoomList(mgr.Rooms(), "ALL ROOMS")
	case "2":
		printRoomList(mgr.AvailableRooms(), "AVAILABLE ROOMS")
	case "3":
		handleViewRoomsByType(sc, mgr)
	case "0":
		return
	default:
		fmt.Println("Invalid choice!")
	}
}

func handleViewRoomsByType(sc *bufio.Scanner, mgr *hotel.Manager) {
	types := hotel.RoomTypes()
	fmt.Println("\nSelect Room Type:")
	for i, t := range types {
		fmt.Printf("  %d. %s (₹%.0f/night)\n", i+1, t, t.BaseRate())
	}

	idx, err := strconv.Atoi(readLine(sc, "Enter choice: "))
	if err != nil || idx < 1 || idx > len(types) {
		fmt.Println("Invalid choice!")
		return
	}
	roomType := types[idx-1]
	printRoomList(mgr.AvailableRoomsByType(roomType), strings.ToUpper(string(roomType))+" ROOMS")
}

func printRoomList(rooms []*hotel.Room, title string) {
	fmt.Printf("\n%s\n", title)
	if len(rooms) == 0 {
		fmt.Println("No rooms found.")
		return
	}
	fmt.Printf("%-8s %-8s %-12s %-5s %-6s %s\n", "Room", "Type", "Price/Night", "AC", "WiFi", "Status")
	fmt.Println(strings.Repeat("-", 55))
	for _, r := range rooms {
		status := "Available"
		if !r.Available {
			status = "Occupied"
		}
		fmt.Printf("%-8d %-8s ₹%-11.0f %-5s %-6s %s\n",
			r.Number, r.Type, r.PricePerNight(), yesNo(r.HasAC), yesNo(r.HasWifi), status)
	}
}

func handleMakeReservation(sc *bufio.Scanner, mgr *hotel.Manager) {
	available := mgr.AvailableRooms()
	if len(available) == 0 {
		fmt.Println("Sorry, no rooms are available at the moment.")
		return
	}
	printRoomList(available, "AVAILABLE ROOMS")

	roomNumber, err := strconv.Atoi(readLine(sc, "\nEnter Room Number to book: "))
	if err != nil {
		fmt.Println("Invalid room number!")
		return
	}
	room := mgr.RoomByNumber(roomNumber)
	if room == nil {
		fmt.Println("Room not found!")
		return
	}
	if !room.Available {
		fmt.Println("This room is not available!")
		return
	}

	fmt.Println("\n--- Guest Details ---")
	name := readLine(sc, "Enter Guest Name: ")
	phone := readLine(sc, "Enter Phone Number: ")
	email := readLine(sc, "Enter Email: ")
	idProof := readLine(sc, "Enter ID Proof (Aadhar/Passport): ")
	address := readLine(sc, "Enter Address: ")

	fmt.Println("\n--- Booking Dates ---")
	checkIn, ok := readDate(sc, "Enter Check-in Date (DD-MM-YYYY): ")
	if !ok {
		fmt.Println("Invalid date format!")
		return
	}
	checkOut, ok := readDate(sc, "Enter Check-out Date (DD-MM-YYYY): ")
	if !ok {
		fmt.Println("Invalid date format!")
		return
	}
	if !checkOut.After(checkIn) {
		fmt.Println("Check-out date must be after check-in date!")
		return
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	fmt.Println("\n--- Booking Summary ---")
	fmt.Printf("Room: %d (%s)\n", room.Number, room.Type)
	fmt.Printf("Duration: %d nights\n", nights)
	fmt.Printf("Rate: ₹%.0f per night\n", room.PricePerNight())
	fmt.Printf("Total Amount: ₹%.2f\n", float64(nights)*room.PricePerNight())

	// Bad input falls back to zero advance, same as an empty answer.
	advance, _ := strconv.ParseFloat(readLine(sc, "\nEnter Advance Payment Amount: ₹"), 64)

	guest := mgr.RegisterGuest(name, phone, email, idProof, address)
	res, err := mgr.Book(guest, room, checkIn, checkOut, advance)
	if err != nil {
		fmt.Printf("Booking failed: %v\n", err)
		return
	}

	fmt.Println("\nRESERVATION SUCCESSFUL!")
	printReservationDetails(res)
}

func handleCheckIn(sc *bufio.Scanner, mgr *hotel.Manager) {
	res := mgr.ReservationByID(readLine(sc, "Enter Reservation ID: "))
	if res == nil {
		fmt.Println("Reservation not found!")
		return
	}
	switch res.Status {
	case hotel.CheckedIn:
		fmt.Println("Guest is already checked in!")
		return
	case hotel.CheckedOut:
		fmt.Println("This reservation has already been checked out!")
		return
	case hotel.Cancelled:
		fmt.Println("This reservation has been cancelled!")
		return
	}

	printReservationDetails(res)
	if !confirm(sc, "Confirm Check-In? (Y/N): ") {
		fmt.Println("Check-in cancelled.")
		return
	}

	if _, err := mgr.CheckIn(res.ID); err != nil {
		fmt.Printf("Check-in failed: %v\n", err)
		return
	}
	fmt.Println("\nCHECK-IN SUCCESSFUL!")
	fmt.Printf("Room %d is now assigned to %s\n", res.Room.Number, res.Guest.Name)
}

func handleCheckOut(sc *bufio.Scanner, mgr *hotel.Manager) {
	res := mgr.ResolveReservation(readLine(sc, "Enter Reservation ID or Room Number: "))
	if res == nil {
		fmt.Println("Reservation not found!")
		return
	}
	if res.Status != hotel.CheckedIn {
		fmt.Println("Guest is not checked in!")
		return
	}

	printBill(res, hotel.GenerateBill(res))
	if !confirm(sc, "Confirm Check-Out? (Y/N): ") {
		fmt.Println("Check-out cancelled.")
		return
	}

	if _, _, err := mgr.CheckOut(res.ID); err != nil {
		fmt.Printf("Check-out failed: %v\n", err)
		return
	}
	fmt.Println("\nCHECK-OUT SUCCESSFUL!")
	fmt.Printf("Room %d is now available.\n", res.Room.Number)
}

func handleViewReservations(sc *bufio.Scanner, mgr *hotel.Manager) {
	fmt.Println("\n  1. All Reservations")
	fmt.Println("  2. Active Reservations Only")
	fmt.Println("  0. Back")

	var reservations []*hotel.Reservation
	switch readLine(sc, "Enter your choice: ") {
	case "1":
		reservations = mgr.Reservations()
	case "2":
		reservations = mgr.ActiveReservations()
	default:
		return
	}

	if len(reservations) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	fmt.Println()
	for _, res := range reservations {
		fmt.Printf("%-10s | Room %-4d | %-20s | %s to %s | %s\n",
			res.ID, res.Room.Number, truncateString(res.Guest.Name, 20),
			res.CheckIn.Format(dateFormat), res.CheckOut.Format(dateFormat), res.Status)
	}
}

func handleSearchReservation(sc *bufio.Scanner, mgr *hotel.Manager) {
	res := mgr.ReservationByID(readLine(sc, "Enter Reservation ID: "))
	if res == nil {
		fmt.Println("Reservation not found!")
		return
	}
	printReservationDetails(res)
}

func handleCancelReservation(sc *bufio.Scanner, mgr *hotel.Manager) {
	res := mgr.ReservationByID(readLine(sc, "Enter Reservation ID: "))
	if res == nil {
		fmt.Println("Reservation not found!")
		return
	}
	if res.Status == hotel.Cancelled {
		fmt.Println("This reservation is already cancelled!")
		return
	}
	if res.Status == hotel.CheckedOut {
		fmt.Println("Cannot cancel a completed reservation!")
		return
	}

	printReservationDetails(res)
	if !confirm(sc, "Are you sure you want to cancel this reservation? (Y/N): ") {
		fmt.Println("Cancellation aborted.")
		return
	}

	_, refund, err := mgr.Cancel(res.ID)
	if err != nil {
		fmt.Printf("Cancellation failed: %v\n", err)
		return
	}
	fmt.Println("\nRESERVATION CANCELLED!")
	if refund > 0 {
		fmt.Printf("Refund amount: ₹%.2f\n", refund)
		fmt.Println("(50% cancellation charge applied)")
	}
}

func handleGenerateBill(sc *bufio.Scanner, mgr *hotel.Manager) {
	res := mgr.ReservationByID(readLine(sc, "Enter Reservation ID: "))
	if res == nil {
		fmt.Println("Reservation not found!")
		return
	}
	printBill(res, hotel.GenerateBill(res))
}

// ------------------ display helpers ------------------

func printReservationDetails(res *hotel.Reservation) {
	fmt.Println(strings.Repeat("=", 55))
	fmt.Printf("Reservation ID : %s\n", res.ID)
	fmt.Printf("Booking Date   : %s\n", res.BookingDate.Format(dateFormat))
	fmt.Printf("Status         : %s\n", res.Status)
	fmt.Printf("Guest          : %s (%s)\n", res.Guest.Name, res.Guest.Phone)
	fmt.Printf("Email          : %s\n", res.Guest.Email)
	fmt.Printf("Room           : %d (%s) at ₹%.0f/night\n", res.Room.Number, res.Room.Type, res.Room.PricePerNight())
	fmt.Printf("Stay           : %s to %s (%d nights)\n",
		res.CheckIn.Format(dateFormat), res.CheckOut.Format(dateFormat), res.Nights())
	fmt.Printf("Total Amount   : ₹%.2f\n", res.TotalAmount)
	fmt.Printf("Advance Paid   : ₹%.2f\n", res.AdvancePaid)
	fmt.Printf("Balance Due    : ₹%.2f\n", res.BalanceDue())
	fmt.Println(strings.Repeat("=", 55))
}

func printBill(res *hotel.Reservation, bill hotel.Bill) {
	fmt.Println(strings.Repeat("=", 55))
	fmt.Println("                  INVOICE / BILL")
	fmt.Println(strings.Repeat("-", 55))
	fmt.Printf("Bill Date      : %s\n", time.Now().Format(dateFormat))
	fmt.Printf("Reservation ID : %s\n", res.ID)
	fmt.Printf("Guest Name     : %s\n", res.Guest.Name)
	fmt.Printf("Room           : %d (%s)\n", res.Room.Number, res.Room.Type)
	fmt.Printf("Stay           : %s to %s\n", res.CheckIn.Format(dateFormat), res.CheckOut.Format(dateFormat))
	fmt.Println(strings.Repeat("-", 55))
	fmt.Printf("Room Charges   : %d nights x ₹%.0f = ₹%.2f\n", bill.Nights, bill.RatePerNight, bill.RoomCharge)
	fmt.Printf("GST (12%%)      : ₹%.2f\n", bill.GST)
	fmt.Printf("Service Tax(5%%): ₹%.2f\n", bill.ServiceTax)
	fmt.Println(strings.Repeat("-", 55))
	fmt.Printf("GRAND TOTAL    : ₹%.2f\n", bill.GrandTotal)
	fmt.Printf("Advance Paid   : ₹%.2f\n", bill.AdvancePaid)
	fmt.Printf("AMOUNT DUE     : ₹%.2f\n", bill.AmountDue)
	fmt.Println(strings.Repeat("=", 55))
}

func printSummary(sum hotel.RoomSummary) {
	fmt.Println("\nROOM SUMMARY")
	fmt.Println(strings.Repeat("-", 35))
	fmt.Printf("%-16s: %d\n", "Total Rooms", sum.Total)
	fmt.Printf("%-16s: %d\n", "Available", sum.Available)
	fmt.Printf("%-16s: %d\n", "Occupied", sum.Occupied)
	fmt.Println(strings.Repeat("-", 35))
	for _, t := range sum.ByType {
		fmt.Printf("%-16s: %d/%d available\n", t.Type, t.Available, t.Total)
	}
	fmt.Println(strings.Repeat("-", 35))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
