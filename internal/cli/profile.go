package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
)

// Profile shows the signed-in user's profile: email, photo presence and the
// stored delivery location.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Email: %s\n", a.sess.Email)

	img, err := a.profile.Image(ctx, a.sess.LocalID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile image:", err)
	} else if img == nil {
		fmt.Fprintln(a.out, "No profile photo set.")
	} else {
		fmt.Fprintf(a.out, "Profile photo set (%d bytes encoded).\n", len(img.Image))
	}

	loc, err := a.profile.Location(ctx, a.sess.LocalID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load location:", err)
	} else if loc == nil {
		fmt.Fprintln(a.out, "No delivery location set.")
	} else {
		fmt.Fprintf(a.out, "Delivery address: %s (%.5f, %.5f)\n", loc.Address, loc.Latitude, loc.Longitude)
	}
	return nil
}

// SetImage uploads a local JPEG as the profile photo, encoded the way the
// backend stores it: a base64 data URI.
func (a *App) SetImage(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read image:", err)
		return err
	}

	image := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
	if err := a.profile.SetImage(ctx, a.sess.LocalID, image); err != nil {
		fmt.Fprintln(a.out, "Could not save image:", err)
		return err
	}
	fmt.Fprintln(a.out, "Profile photo saved.")
	return nil
}

// SetLocation prompts for coordinates and an address and stores them.
func (a *App) SetLocation(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}

	lat, err := GetFloat(a.reader, "Latitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	lng, err := GetFloat(a.reader, "Longitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	address, err := GetSimpleText(a.reader, "Address", a.out)
	if err != nil {
		return err
	}
	if address == "" {
		fmt.Fprintln(a.out, "An address is required.")
		return nil
	}

	if err := a.profile.SetLocation(ctx, a.sess.LocalID, lat, lng, address); err != nil {
		fmt.Fprintln(a.out, "Could not save location:", err)
		return err
	}
	fmt.Fprintf(a.out, "Location saved: %s\n", address)
	return nil
}
