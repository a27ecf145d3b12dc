/*
 * errors.go, part of graphpot.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package pot

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
//The decoration slice should contain a list of the functions in the calling
//stack, plus, for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string //if passed an empty string, it just returns the current decoration without adding to it.
}

//CError is the concrete error type of the root package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(caller, format string, a ...interface{}) *CError {
	err := new(CError)
	err.msg = fmt.Sprintf(format, a...)
	err.Decorate(caller)
	return err
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Using it on anything that does not
//implement Error is a programming error, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
