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

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ubports/mmwrapper/mm"
	. "launchpad.net/gocheck"
)

func Test(t *testing.T) { TestingT(t) }

type ProfilesTestSuite struct {
	storePath string
	origFile  func(bool) (string, error)
}

var _ = Suite(&ProfilesTestSuite{})

func (s *ProfilesTestSuite) SetUpTest(c *C) {
	s.storePath = filepath.Join(c.MkDir(), "profiles.json")
	s.origFile = storeFile
	storeFile = func(ensure bool) (string, error) {
		if !ensure {
			if _, err := os.Stat(s.storePath); err != nil {
				return "", err
			}
		}
		return s.storePath, nil
	}
}

func (s *ProfilesTestSuite) TearDownTest(c *C) {
	storeFile = s.origFile
}

func (s *ProfilesTestSuite) TestSetGetProfile(c *C) {
	roaming := false
	props := mm.BearerProperties{
		Apn:          "internet",
		IpType:       mm.BearerIpFamilyIpv4v6,
		AllowedAuth:  mm.BearerAllowedAuthChap,
		User:         "guest",
		Password:     "guest",
		AllowRoaming: &roaming,
	}
	c.Assert(SetProfile("867698041234567", props), IsNil)

	got, err := GetProfile("867698041234567")
	c.Assert(err, IsNil)
	c.Check(got, DeepEquals, props)
}

func (s *ProfilesTestSuite) TestStoreIsPrivate(c *C) {
	c.Assert(SetProfile("imei", mm.BearerProperties{Apn: "a", Password: "secret"}), IsNil)
	fi, err := os.Stat(s.storePath)
	c.Assert(err, IsNil)
	c.Check(fi.Mode().Perm(), Equals, os.FileMode(0600))
}

func (s *ProfilesTestSuite) TestExistingStoreMadePrivate(c *C) {
	c.Assert(os.WriteFile(s.storePath, []byte("{}"), 0644), IsNil)
	c.Assert(os.Chmod(s.storePath, 0644), IsNil)
	c.Assert(SetProfile("imei", mm.BearerProperties{Apn: "a", Password: "secret"}), IsNil)
	fi, err := os.Stat(s.storePath)
	c.Assert(err, IsNil)
	c.Check(fi.Mode().Perm(), Equals, os.FileMode(0600))
}

func (s *ProfilesTestSuite) TestReplaceProfile(c *C) {
	c.Assert(SetProfile("imei", mm.BearerProperties{Apn: "old"}), IsNil)
	c.Assert(SetProfile("imei", mm.BearerProperties{Apn: "new"}), IsNil)
	got, err := GetProfile("imei")
	c.Assert(err, IsNil)
	c.Check(got.Apn, Equals, "new")
}

func (s *ProfilesTestSuite) TestGetProfileNoStore(c *C) {
	_, err := GetProfile("imei")
	c.Check(err, Equals, ErrorProfileNotFound{"imei"})
}

func (s *ProfilesTestSuite) TestGetProfileUnknown(c *C) {
	c.Assert(SetProfile("imei", mm.BearerProperties{Apn: "internet"}), IsNil)
	_, err := GetProfile("other")
	c.Check(err, Equals, ErrorProfileNotFound{"other"})
}

func (s *ProfilesTestSuite) TestProfileIds(c *C) {
	ids, err := ProfileIds()
	c.Assert(err, IsNil)
	c.Check(ids, HasLen, 0)

	c.Assert(SetProfile("b", mm.BearerProperties{Apn: "b"}), IsNil)
	c.Assert(SetProfile("a", mm.BearerProperties{Apn: "a"}), IsNil)
	ids, err = ProfileIds()
	c.Assert(err, IsNil)
	c.Check(ids, DeepEquals, []string{"a", "b"})
}

func (s *ProfilesTestSuite) TestRemoveProfiles(c *C) {
	c.Assert(SetProfile("a", mm.BearerProperties{Apn: "a"}), IsNil)
	c.Assert(SetProfile("b", mm.BearerProperties{Apn: "b"}), IsNil)

	err := RemoveProfiles("a", "c", "d")
	c.Assert(err, FitsTypeOf, Multierror{})
	c.Check(err.(Multierror), DeepEquals, Multierror{ErrorProfileNotFound{"c"}, ErrorProfileNotFound{"d"}})
	c.Check(err, ErrorMatches, "multiple errors: .*modem c.*modem d.*")

	ids, err := ProfileIds()
	c.Assert(err, IsNil)
	c.Check(ids, DeepEquals, []string{"b"})

	c.Assert(RemoveProfile("b"), IsNil)
	c.Check(RemoveProfile("b"), ErrorMatches, "no profile stored for modem b")
}

func (s *ProfilesTestSuite) TestPreferredModem(c *C) {
	_, err := GetPreferredModem()
	c.Check(err, Equals, ErrorNoPreferredModem)

	c.Assert(SetProfile("a", mm.BearerProperties{Apn: "a"}), IsNil)
	c.Assert(SetPreferredModem("a"), IsNil)
	id, err := GetPreferredModem()
	c.Assert(err, IsNil)
	c.Check(id, Equals, "a")

	// the profiles are kept alongside
	_, err = GetProfile("a")
	c.Check(err, IsNil)
}

func (s *ProfilesTestSuite) TestCorruptStore(c *C) {
	c.Assert(os.WriteFile(s.storePath, []byte("{not json"), 0600), IsNil)
	_, err := GetProfile("a")
	c.Check(err, Equals, ErrorProfileNotFound{"a"})

	c.Assert(SetProfile("a", mm.BearerProperties{Apn: "a"}), IsNil)
	got, err := GetProfile("a")
	c.Assert(err, IsNil)
	c.Check(got.Apn, Equals, "a")
}

func (s *ProfilesTestSuite) TestClear(c *C) {
	c.Assert(Clear(), IsNil)
	c.Assert(SetPreferredModem("a"), IsNil)
	c.Assert(Clear(), IsNil)
	_, err := os.Stat(s.storePath)
	c.Check(os.IsNotExist(err), Equals, true)
	_, err = GetPreferredModem()
	c.Check(err, Equals, ErrorNoPreferredModem)
}

func (s *ProfilesTestSuite) TestMultierror(c *C) {
	c.Check(Multierror{}.Result(), IsNil)
	one := Multierror{ErrorProfileNotFound{"x"}}
	c.Check(one.Result(), ErrorMatches, "no profile stored for modem x")
}
