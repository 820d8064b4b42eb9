package constants

// Logo is the ASCII art representation of the contribart logo
const Logo = `
 ###   ###  #   # ##### ###  ###  ###    ##   ###  #####
#   # #   # ##  #   #   #  #  #   #  #  #  #  #  #   #
#     #   # # # #   #   ###   #   ###   ####  ###    #
#   # #   # #  ##   #   #  #  #   #  #  #  #  #  #   #
 ###   ###  #   #   #   #  # ###  ###   #  #  #  #   #
`

// Tagline is the application's tagline/motto
const Tagline = "paint your contribution graph, one backdated commit at a time"
