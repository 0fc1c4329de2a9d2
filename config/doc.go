// This file is part of mipsdatapath.
//
// mipsdatapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mipsdatapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mipsdatapath.  If not, see <https://www.gnu.org/licenses/>.


// Package config gathers the settings of the simulator from a configuration
// file, the environment and the command line. Values are resolved by viper
// in the following order of precedence:
//
//	command line flag
//	environment variable
//	configuration file
//	default
//
// Environment variables have the prefix MIPSDP and use an underscore in
// place of the dot. For example, the memory.words key is set with the
// MIPSDP_MEMORY_WORDS variable. LoadEnv() reads such variables from a dotenv
// file.
//
// An example configuration file:
//
//	mode: multi
//	memory:
//	  words: 4096
//	run:
//	  limit: 500
//	log:
//	  file: mipsdatapath.log
package config
