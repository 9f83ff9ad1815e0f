// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package world reconciles local world directories with the worlds stored in
com.mojang and copies worlds between the two.

	  local patterns            com.mojang/minecraftWorlds
	+----------------+          +--------------------+
	| worlds/*       |          | foo/  bar/         |
	+-------+--------+          +---------+----------+
	        |                             |
	        +-------------+---------------+
	                      |
	               +------+------+
	               |  Registry   |
	               +------+------+
	                      |
	       +--------------+--------------+
	       |              |              |
	    Export          Import          List

A Registry is built once per invocation by New and is consumed by exactly one
operation. A second call returns ErrRegistryConsumed.

World names are the final path segment of a world directory and must be unique
among local worlds. The same name on both sides means the same world.

Export and Import validate every requested name up front and report all missing
names in a single NotFoundError. The copy loop is not transactional: it stops
at the first failure and leaves completed transfers in place.
*/
package world
