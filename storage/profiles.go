/*
 * Copyright 2014 Canonical Ltd.
 *
 * Authors:
 * Sergio Schvezov: sergio.schvezov@cannical.com
 *
 * This file is part of mmwrapper.
 *
 * mmwrapper is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; version 3.
 *
 * mmwrapper is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package storage persists per-modem connection profiles and the preferred
// modem in the XDG data directory.
package storage

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/ubports/mmwrapper/mm"
	"launchpad.net/go-xdg"
)

const SUBPATH = "mmwrapper"

var profilesPath = path.Join(SUBPATH, "profiles.json")

var profilesMutex sync.Mutex

// profileStore is the on disk layout. Modems are keyed by equipment
// identifier, which survives reboots and replugging unlike object paths.
type profileStore struct {
	PreferredModem string                         `json:"preferred-modem,omitempty"`
	Profiles       map[string]mm.BearerProperties `json:"profiles"`
}

// storeFile returns the store path. With ensure set the directory is created
// if needed, otherwise the file must already exist.
var storeFile = func(ensure bool) (string, error) {
	if ensure {
		return xdg.Data.Ensure(profilesPath)
	}
	return xdg.Data.Find(profilesPath)
}

// SetProfile stores props as the connection profile of the modem with the
// given equipment identifier, replacing any previous one.
func SetProfile(id string, props mm.BearerProperties) error {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	return updateStore(func(ps *profileStore) error {
		ps.Profiles[id] = props
		return nil
	})
}

func GetProfile(id string) (mm.BearerProperties, error) {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	ps, err := loadStore()
	if err != nil {
		return mm.BearerProperties{}, ErrorProfileNotFound{id}
	}
	props, ok := ps.Profiles[id]
	if !ok {
		return mm.BearerProperties{}, ErrorProfileNotFound{id}
	}
	return props, nil
}

// ProfileIds returns the identifiers of the modems with a stored profile,
// sorted.
func ProfileIds() ([]string, error) {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	ps, err := loadStore()
	if err != nil {
		return nil, nil
	}
	ids := make([]string, 0, len(ps.Profiles))
	for id := range ps.Profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func RemoveProfile(id string) error {
	return RemoveProfiles(id)
}

// RemoveProfiles removes the profiles of every given modem. Profiles that
// exist are removed even when some of the others do not, and each missing
// one is reported.
func RemoveProfiles(ids ...string) error {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	errs := Multierror{}
	err := updateStore(func(ps *profileStore) error {
		for _, id := range ids {
			if _, ok := ps.Profiles[id]; !ok {
				errs = append(errs, ErrorProfileNotFound{id})
				continue
			}
			delete(ps.Profiles, id)
		}
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return errs.Result()
}

func SetPreferredModem(id string) error {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	return updateStore(func(ps *profileStore) error {
		ps.PreferredModem = id
		return nil
	})
}

// GetPreferredModem returns the equipment identifier set with
// SetPreferredModem, ErrorNoPreferredModem if there is none.
func GetPreferredModem() (string, error) {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	ps, err := loadStore()
	if err != nil || ps.PreferredModem == "" {
		return "", ErrorNoPreferredModem
	}
	return ps.PreferredModem, nil
}

// Clear removes the store file with every profile and the preferred modem.
func Clear() error {
	profilesMutex.Lock()
	defer profilesMutex.Unlock()

	storePath, err := storeFile(false)
	if err != nil {
		// nothing stored
		return nil
	}
	if err := os.Remove(storePath); err != nil {
		return ErrorRemovingFile{storePath, err}
	}
	return nil
}

func loadStore() (*profileStore, error) {
	storePath, err := storeFile(false)
	if err != nil {
		return nil, err
	}
	return readStore(storePath)
}

func updateStore(update func(*profileStore) error) error {
	storePath, err := storeFile(true)
	if err != nil {
		return err
	}
	ps, readErr := readStore(storePath)
	if readErr != nil && !os.IsNotExist(readErr) {
		log.Println("Cannot read previous profile state:", readErr)
	}
	if err := update(ps); err != nil {
		return err
	}
	return writeStore(ps, storePath)
}

// readStore always returns a usable store, empty when storePath cannot be
// read or decoded.
func readStore(storePath string) (*profileStore, error) {
	ps := &profileStore{Profiles: make(map[string]mm.BearerProperties)}
	file, err := os.Open(storePath)
	if err != nil {
		return ps, err
	}
	defer file.Close()
	jsonReader := json.NewDecoder(file)
	if err := jsonReader.Decode(ps); err != nil {
		return &profileStore{Profiles: make(map[string]mm.BearerProperties)}, err
	}
	if ps.Profiles == nil {
		ps.Profiles = make(map[string]mm.BearerProperties)
	}
	return ps, nil
}

// storeMode keeps the store private, it holds APN passwords.
const storeMode = 0600

func writeStore(ps *profileStore, storePath string) (err error) {
	file, err := os.OpenFile(storePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, storeMode)
	if err != nil {
		log.Println(err)
		return err
	}
	// files written before the mode was enforced keep theirs on open
	if err := file.Chmod(storeMode); err != nil {
		file.Close()
		log.Println(err)
		return err
	}
	defer func() {
		file.Close()
		if err != nil {
			os.Remove(storePath)
		}
	}()
	w := bufio.NewWriter(file)
	jsonWriter := json.NewEncoder(w)
	jsonWriter.SetIndent("", "  ")
	if err := jsonWriter.Encode(ps); err != nil {
		log.Println(err)
		return err
	}
	return w.Flush()
}
