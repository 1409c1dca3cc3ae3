package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/flight-tower/flight-tower/internal/client"
	"github.com/flight-tower/flight-tower/internal/domain"
)

var errCSVDetail = errors.New("csv output is only available for nearby")

// renderSearch writes one search snapshot in the requested format.
func renderSearch(w io.Writer, format string, snap client.Snapshot) error {
	flights := []domain.FlightSummary{}
	if snap.Result != nil && snap.Result.Flights != nil {
		flights = snap.Result.Flights
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap.Result)
	case formatCSV:
		if len(flights) == 0 {
			header, err := csvutil.Header(domain.FlightSummary{}, "csv")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, strings.Join(header, ","))
			return err
		}
		data, err := csvutil.Marshal(flights)
		if err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	status := fmt.Sprintf("%d flights within %g km of %.4f,%.4f (fetched %s)",
		len(flights), snap.Criteria.RadiusKm, snap.Criteria.Lat, snap.Criteria.Lon, snap.FetchedAt.Format(time.TimeOnly))
	if snap.Stale {
		status += " [stale: " + snap.Err.Error() + "]"
	}
	fmt.Fprintln(tw, status)
	fmt.Fprintln(tw, "ID\tCALLSIGN\tFROM\tTO\tALT FT\tSPEED KTS\tDIST KM")
	for _, f := range flights {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
			str(f.ID), str(f.Callsign), str(f.OriginAirportIATA), str(f.DestinationAirportIATA),
			num(f.AltitudeFt), num(f.SpeedKts), f.DistanceKm)
	}
	return tw.Flush()
}

// renderDetail writes a flight detail in the requested format.
func renderDetail(w io.Writer, format string, id domain.FlightID, d *domain.FlightDetail) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case formatCSV:
		return errCSVDetail
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Flight\t%s\n", id)
	fmt.Fprintf(tw, "Airline\t%s\n", str(d.Airline))
	fmt.Fprintf(tw, "Aircraft\t%s\n", str(d.AircraftCode))
	fmt.Fprintf(tw, "Route\t%s -> %s\n", str(d.Route.From), str(d.Route.To))
	fmt.Fprintf(tw, "Countries\t%s -> %s\n", str(d.OriginCountry), str(d.DestinationCountry))
	fmt.Fprintf(tw, "Departure\t%s\n", unixTime(d.Times.ScheduledDeparture))
	fmt.Fprintf(tw, "Arrival\t%s\n", unixTime(d.Times.ScheduledArrival))
	fmt.Fprintf(tw, "Duration\t%s\n", str(d.Times.DurationReadable))
	return tw.Flush()
}

func str(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func num(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func unixTime(sec *int64) string {
	if sec == nil {
		return "-"
	}
	return time.Unix(*sec, 0).UTC().Format("2006-01-02 15:04 MST")
}
